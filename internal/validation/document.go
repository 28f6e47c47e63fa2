package validation

import "strings"

// Brazilian tax document validation. CPF is 11 digits, CNPJ is 14; the last
// two digits of each are check digits over the preceding ones (mod 11).

// NormalizeDocument strips everything but digits.
func NormalizeDocument(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func IsDocument(value string) bool {
	return IsValidCPF(value) || IsValidCNPJ(value)
}

func IsValidCPF(value string) bool {
	digits := NormalizeDocument(value)
	if len(digits) != 11 || repeatedDigit(digits) {
		return false
	}

	first := checkDigit(digits[:9], []int{10, 9, 8, 7, 6, 5, 4, 3, 2})
	second := checkDigit(digits[:9]+string(rune('0'+first)), []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2})

	return digits[9] == byte('0'+first) && digits[10] == byte('0'+second)
}

func IsValidCNPJ(value string) bool {
	digits := NormalizeDocument(value)
	if len(digits) != 14 || repeatedDigit(digits) {
		return false
	}

	firstMultipliers := []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	secondMultipliers := append([]int{6}, firstMultipliers...)

	first := checkDigit(digits[:12], firstMultipliers)
	second := checkDigit(digits[:12]+string(rune('0'+first)), secondMultipliers)

	return digits[12] == byte('0'+first) && digits[13] == byte('0'+second)
}

func checkDigit(digits string, multipliers []int) int {
	sum := 0
	for i := 0; i < len(digits); i++ {
		sum += int(digits[i]-'0') * multipliers[i]
	}
	if rest := sum % 11; rest >= 2 {
		return 11 - rest
	}
	return 0
}

func repeatedDigit(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}
