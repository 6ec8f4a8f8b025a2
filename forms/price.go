package forms

import (
	"fmt"
	"strings"
)

// NormalizePrice turns free-text money input into the canonical "$<digits>"
// form. Anything after the first period is dropped (cents are truncated,
// never rounded) and only ASCII digits of the remaining prefix are kept.
func NormalizePrice(input string) (string, error) {
	head, _, _ := strings.Cut(input, ".")
	var digits strings.Builder
	for i := 0; i < len(head); i++ {
		if head[i] >= '0' && head[i] <= '9' {
			digits.WriteByte(head[i])
		}
	}
	if digits.Len() == 0 {
		return "", fmt.Errorf("invalid price %q", input)
	}
	return "$" + digits.String(), nil
}
