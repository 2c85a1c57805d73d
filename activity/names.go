package activity

import "strings"

// Charged species appear under three naming conventions in thermodynamic
// databases:
//
//	repeated signs   "Ca++", "CO3--"
//	sign and digit   "Ca+2", "CO3-2"
//	bracket suffix   "Ca[2+]", "CO3[2-]"
//
// Parameter tables are keyed by one convention; lookups must hit them from
// any of the three. ParseChargedName reduces a name to its canonical
// (base, charge) pair and IsAlternativeChargedName compares two names
// through it.

// ParseChargedName splits a species name into its base formula and the
// electrical charge encoded by its suffix. Names without a recognized
// charge suffix return the whole name and charge zero.
func ParseChargedName(name string) (base string, charge int) {
	if name == "" {
		return "", 0
	}

	// Bracket convention: Ca[2+], CO3[2-], H[+].
	if strings.HasSuffix(name, "]") {
		open := strings.LastIndexByte(name, '[')
		if open < 0 {
			return name, 0
		}
		inner := name[open+1 : len(name)-1]
		if inner == "" {
			return name, 0
		}
		sign := 0
		switch inner[len(inner)-1] {
		case '+':
			sign = +1
		case '-':
			sign = -1
		default:
			return name, 0
		}
		digits := inner[:len(inner)-1]
		mag := 1
		if digits != "" {
			mag = 0
			for _, c := range digits {
				if c < '0' || c > '9' {
					return name, 0
				}
				mag = mag*10 + int(c-'0')
			}
			if mag == 0 {
				return name, 0
			}
		}

		return name[:open], sign * mag
	}

	// Sign-and-digit convention: Ca+2, Fe-3. The digit run must follow a
	// single sign character, otherwise the trailing digits belong to the
	// formula itself (e.g. "NH3").
	end := len(name)
	dig := end
	for dig > 0 && name[dig-1] >= '0' && name[dig-1] <= '9' {
		dig--
	}
	if dig < end && dig > 0 && (name[dig-1] == '+' || name[dig-1] == '-') {
		mag := 0
		for _, c := range name[dig:] {
			mag = mag*10 + int(c-'0')
		}
		if mag > 0 {
			if name[dig-1] == '-' {
				mag = -mag
			}

			return name[:dig-1], mag
		}

		return name, 0
	}

	// Repeated-sign convention: Na+, Cl-, Fe+++.
	run := 0
	last := name[end-1]
	if last == '+' || last == '-' {
		for run < end && name[end-1-run] == last {
			run++
		}
		charge = run
		if last == '-' {
			charge = -run
		}

		return name[:end-run], charge
	}

	return name, 0
}

// IsAlternativeChargedName reports whether a and b name the same species
// under different charge-suffix conventions (or are simply equal).
func IsAlternativeChargedName(a, b string) bool {
	if a == b {
		return true
	}
	baseA, zA := ParseChargedName(a)
	baseB, zB := ParseChargedName(b)

	return zA != 0 && baseA == baseB && zA == zB
}
