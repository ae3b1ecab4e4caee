package datamanager

// Dictionary maps the integer codes a Matrix stores back to their
// string values. It is shared by reference between a DataManager and
// every OutputBuffer built from it, and is append-only over the
// lifetime of a result: new values may be interned, but existing
// code→value mappings never change, so stale references to it (held by
// old output buffers) stay valid.
type Dictionary struct {
	valuesToCode map[string]int
	codeToValue  []string
}

// NewDictionary returns an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{valuesToCode: map[string]int{}}
}

// Intern returns the code for value, allocating a new one if value has
// not been seen before.
func (d *Dictionary) Intern(value string) int {
	if code, ok := d.valuesToCode[value]; ok {
		return code
	}
	code := len(d.codeToValue)
	d.codeToValue = append(d.codeToValue, value)
	d.valuesToCode[value] = code
	return code
}

// Value returns the string value a code was interned from.
func (d *Dictionary) Value(code int) string {
	return d.codeToValue[code]
}

// Len returns the number of distinct interned values.
func (d *Dictionary) Len() int {
	return len(d.codeToValue)
}
