package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "without cause",
			err:  New(ErrCodeInvalidConfig, "missing size %q", "display"),
			want: `INVALID_CONFIG: missing size "display"`,
		},
		{
			name: "with cause",
			err:  Wrap(ErrCodeAssetUnreadable, stderrors.New("no such file"), "read logo"),
			want: "ASSET_UNREADABLE: read logo: no such file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeUnknownLayout, "layout %q", "hexagon")

	if !Is(err, ErrCodeUnknownLayout) {
		t.Error("Is() = false for matching code")
	}
	if Is(err, ErrCodeEncodeFailed) {
		t.Error("Is() = true for non-matching code")
	}
	if Is(stderrors.New("plain"), ErrCodeUnknownLayout) {
		t.Error("Is() = true for non-structured error")
	}
}

func TestIsThroughWrapping(t *testing.T) {
	inner := New(ErrCodeAssetUnreadable, "read font")
	outer := fmt.Errorf("render: %w", inner)

	if !Is(outer, ErrCodeAssetUnreadable) {
		t.Error("Is() should unwrap fmt-wrapped errors")
	}
	if GetCode(outer) != ErrCodeAssetUnreadable {
		t.Errorf("GetCode() = %q, want %q", GetCode(outer), ErrCodeAssetUnreadable)
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "structured error strips code",
			err:  New(ErrCodeInvalidRatio, "unknown ratio: banner"),
			want: "unknown ratio: banner",
		},
		{
			name: "plain error passes through",
			err:  stderrors.New("boom"),
			want: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
