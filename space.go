package caseforge

import (
	"fmt"
	"math/big"

	sliceutil "github.com/projectdiscovery/utils/slice"
)

// States of a text field, in digit order. Index 0 is the first state of the
// enumeration, so combination 0 has every text field Valid.
var TextStates = []string{"Valid", "Invalid", "Empty"}

// States of a binary field, in digit order.
var BinaryStates = []string{"Checked", "Unchecked"}

var (
	radixText   = big.NewInt(int64(len(TextStates)))
	radixBinary = big.NewInt(int64(len(BinaryStates)))
)

// FieldSpec is an ordered set of input fields for one domain/scenario.
// Text fields have three states (Valid/Invalid/Empty) and binary fields two
// (Checked/Unchecked). Field order is significant: it fixes the positional
// weighting used when decoding a combination index, text fields being the
// high-order digits and binary fields the low-order ones.
type FieldSpec struct {
	TextFields   []string
	BinaryFields []string
}

// Assignment maps every field of a FieldSpec to one concrete state.
type Assignment map[string]string

// Fields returns all field names in spec order (text fields first).
func (f *FieldSpec) Fields() []string {
	all := make([]string, 0, len(f.TextFields)+len(f.BinaryFields))
	all = append(all, f.TextFields...)
	all = append(all, f.BinaryFields...)
	return all
}

// Validate checks that all field names are non-empty and unique across both
// lists. Duplicate names would corrupt the index<->assignment bijection.
func (f *FieldSpec) Validate() error {
	all := f.Fields()
	for _, name := range all {
		if name == "" {
			return fmt.Errorf("%w: empty field name", ErrInvalidFieldSpec)
		}
	}
	dedupe := sliceutil.Dedupe(all)
	if len(dedupe) != len(all) {
		return fmt.Errorf("%w: %v duplicate field names", ErrInvalidFieldSpec, len(all)-len(dedupe))
	}
	return nil
}

// Size returns the total number of combinations 3^t * 2^b. The result is
// arbitrary precision since even moderate field counts exceed 64 bits.
func (f *FieldSpec) Size() (*big.Int, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	size := new(big.Int).Exp(radixText, big.NewInt(int64(len(f.TextFields))), nil)
	size.Mul(size, new(big.Int).Exp(radixBinary, big.NewInt(int64(len(f.BinaryFields))), nil))
	return size, nil
}

// Decode maps a combination index to its Assignment without enumerating any
// predecessor. The index is read as a mixed-radix number: binary fields are
// the least significant digits so binary states toggle fastest, then text
// fields. Index 0 therefore yields Valid/Checked everywhere and size-1 yields
// Empty/Unchecked everywhere.
func (f *FieldSpec) Decode(index *big.Int) (Assignment, error) {
	size, err := f.Size()
	if err != nil {
		return nil, err
	}
	if index == nil || index.Sign() < 0 || index.Cmp(size) >= 0 {
		return nil, fmt.Errorf("%w: %v not in [0,%v)", ErrIndexOutOfRange, index, size)
	}
	assignment := make(Assignment, len(f.TextFields)+len(f.BinaryFields))
	rest := new(big.Int).Set(index)
	digit := new(big.Int)
	for i := len(f.BinaryFields) - 1; i >= 0; i-- {
		rest.QuoRem(rest, radixBinary, digit)
		assignment[f.BinaryFields[i]] = BinaryStates[digit.Int64()]
	}
	for i := len(f.TextFields) - 1; i >= 0; i-- {
		rest.QuoRem(rest, radixText, digit)
		assignment[f.TextFields[i]] = TextStates[digit.Int64()]
	}
	return assignment, nil
}
