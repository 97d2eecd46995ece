package cloner

import "regexp"

var itemIDPattern = regexp.MustCompile(`item/(\d+)`)

// ExtractListingID localiza o id numérico depois do segmento "item/" em
// uma referência qualquer (normalmente uma URL do Reverb). Referência sem
// id não é erro, apenas ok=false.
func ExtractListingID(ref string) (string, bool) {
	m := itemIDPattern.FindStringSubmatch(ref)
	if m == nil {
		return "", false
	}
	return m[1], true
}
