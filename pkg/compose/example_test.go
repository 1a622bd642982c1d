package compose_test

import (
	"fmt"

	"github.com/amadad/phantom/pkg/brand"
	"github.com/amadad/phantom/pkg/compose"
)

func ExampleBuildPalette() {
	v := brand.Visual{
		Palette: brand.Palette{
			Background: "#faf7f2",
			Primary:    "#1d3557",
			Accent:     "#e63946",
			Secondary:  "#457b9d",
			Warm:       "#f1bd8b",
		},
		Background: "light",
	}

	p := compose.BuildPalette(v)
	for _, c := range p {
		fmt.Println(c)
	}
	// Output:
	// #faf7f2
	// #f1bd8b
	// #e63946
	// #1d3557
}

func ExampleBuildStylePlan() {
	v := brand.Visual{
		Layouts:    []string{"split", "overlay", "type-only"},
		Density:    "moderate",
		Alignment:  "left",
		Background: "light",
	}

	a := compose.BuildStylePlan(v, "spring launch", true, "")
	b := compose.BuildStylePlan(v, "spring launch", true, "")
	fmt.Println(a == b)
	// Output:
	// true
}
