package main

import "strconv"

// atoi converts the leading integer in s. Leading blanks and one sign
// are skipped; conversion stops at the first non-digit.
func atoi(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	sign := 1
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		if s[i] == '-' {
			sign = -1
		}
		i++
	}
	n := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
	}
	return sign * n
}

// itoa formats v in base, which must be in [2, 36]; otherwise it returns
// "". Only base 10 carries a minus sign, other bases format |v|.
func itoa(v, base int) string {
	if base < 2 || base > 36 {
		return ""
	}
	if v < 0 && base != 10 {
		return strconv.FormatUint(uint64(-(v+1))+1, base)
	}
	return strconv.FormatInt(int64(v), base)
}
