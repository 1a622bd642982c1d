package compose

import "hash/fnv"

// hash32 returns the 32-bit FNV-1a hash of s.
// FNV-1a is stable across platforms and Go versions, which is what makes
// seeded style selection reproducible.
func hash32(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}

// seedBase picks the base seed string: an explicit seed wins over the topic,
// and "default" is used when neither is set.
func seedBase(seed, topic string) string {
	if seed != "" {
		return seed
	}
	if topic != "" {
		return topic
	}
	return "default"
}

// pickUniform selects an element of list by hashing the salted seed modulo
// the list length. Returns fallback for an empty list.
func pickUniform(list []string, salted, fallback string) string {
	if len(list) == 0 {
		return fallback
	}
	return list[int(hash32(salted)%uint32(len(list)))]
}
