package caseforge

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpaceSize(t *testing.T) {
	// size must be exactly 3^t * 2^b for all small field counts
	for textCount := 0; textCount <= 10; textCount++ {
		for binaryCount := 0; binaryCount <= 10; binaryCount++ {
			spec := syntheticSpec(textCount, binaryCount)
			expected := new(big.Int).Exp(big.NewInt(3), big.NewInt(int64(textCount)), nil)
			expected.Mul(expected, new(big.Int).Exp(big.NewInt(2), big.NewInt(int64(binaryCount)), nil))
			size, err := spec.Size()
			require.Nil(t, err)
			require.Zero(t, expected.Cmp(size), "size mismatch for t=%v b=%v", textCount, binaryCount)
		}
	}
}

func TestSpaceSizeNoOverflow(t *testing.T) {
	// 3^50 * 2^20 does not fit in 64 bits, big.Int must carry it exactly
	spec := syntheticSpec(50, 20)
	size, err := spec.Size()
	require.Nil(t, err)
	// 3^50 * 2^20 == 6^20 * 3^30
	expected := new(big.Int).Exp(big.NewInt(6), big.NewInt(20), nil)
	expected.Mul(expected, new(big.Int).Exp(big.NewInt(3), big.NewInt(30), nil))
	require.Zero(t, expected.Cmp(size), "got %v", size)
	require.Greater(t, size.BitLen(), 64)
}

func TestSpaceValidate(t *testing.T) {
	testcases := []struct {
		spec *FieldSpec
		ok   bool
	}{
		{spec: &FieldSpec{TextFields: []string{"a", "b"}, BinaryFields: []string{"c"}}, ok: true},
		{spec: &FieldSpec{}, ok: true},
		{spec: &FieldSpec{TextFields: []string{"a", "a"}}, ok: false},
		{spec: &FieldSpec{TextFields: []string{"a"}, BinaryFields: []string{"a"}}, ok: false},
		{spec: &FieldSpec{TextFields: []string{""}}, ok: false},
	}
	for _, tc := range testcases {
		err := tc.spec.Validate()
		if tc.ok {
			require.Nil(t, err)
		} else {
			require.ErrorIs(t, err, ErrInvalidFieldSpec)
		}
	}
}

func TestDecodeBounds(t *testing.T) {
	spec := &FieldSpec{TextFields: []string{"username"}, BinaryFields: []string{"remember_me"}}

	_, err := spec.Decode(big.NewInt(-1))
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = spec.Decode(big.NewInt(6))
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	first, err := spec.Decode(big.NewInt(0))
	require.Nil(t, err)
	require.Equal(t, Assignment{"username": "Valid", "remember_me": "Checked"}, first)

	last, err := spec.Decode(big.NewInt(5))
	require.Nil(t, err)
	require.Equal(t, Assignment{"username": "Empty", "remember_me": "Unchecked"}, last)
}

func TestDecodeOrder(t *testing.T) {
	// binary fields are the low-order digits: they toggle fastest
	spec := &FieldSpec{TextFields: []string{"username"}, BinaryFields: []string{"remember_me"}}
	expected := []Assignment{
		{"username": "Valid", "remember_me": "Checked"},
		{"username": "Valid", "remember_me": "Unchecked"},
		{"username": "Invalid", "remember_me": "Checked"},
		{"username": "Invalid", "remember_me": "Unchecked"},
		{"username": "Empty", "remember_me": "Checked"},
		{"username": "Empty", "remember_me": "Unchecked"},
	}
	for i, want := range expected {
		got, err := spec.Decode(big.NewInt(int64(i)))
		require.Nil(t, err)
		require.Equal(t, want, got, "index %v", i)
	}
}

func TestDecodeBijection(t *testing.T) {
	// exhaustive check on a small space: every index yields a distinct
	// assignment and the whole space is covered
	spec := &FieldSpec{TextFields: []string{"a", "b"}, BinaryFields: []string{"c"}}
	size, err := spec.Size()
	require.Nil(t, err)
	require.EqualValues(t, 18, size.Int64())

	seen := map[string]struct{}{}
	for i := int64(0); i < size.Int64(); i++ {
		assignment, err := spec.Decode(big.NewInt(i))
		require.Nil(t, err)
		key := assignment["a"] + "|" + assignment["b"] + "|" + assignment["c"]
		_, dup := seen[key]
		require.False(t, dup, "duplicate assignment at index %v", i)
		seen[key] = struct{}{}
	}
	require.Len(t, seen, 18)
}

func syntheticSpec(textCount, binaryCount int) *FieldSpec {
	spec := &FieldSpec{}
	for i := 0; i < textCount; i++ {
		spec.TextFields = append(spec.TextFields, "t"+string(rune('a'+i%26))+string(rune('0'+i/26)))
	}
	for i := 0; i < binaryCount; i++ {
		spec.BinaryFields = append(spec.BinaryFields, "b"+string(rune('a'+i%26))+string(rune('0'+i/26)))
	}
	return spec
}
