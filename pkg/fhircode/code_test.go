package fhircode

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOf_KnownValue(t *testing.T) {
	c, err := Of(AddressTypePostal)
	require.NoError(t, err)

	v, ok := c.Value()
	assert.True(t, ok)
	assert.Equal(t, AddressTypePostal, v)
	assert.Equal(t, "postal", c.String())
	assert.Equal(t, "http://hl7.org/fhir/address-type", c.System())
	assert.Equal(t, "Postal", c.Display())
	assert.Equal(t, "", c.ID())
	assert.Empty(t, c.Extensions())
	assert.NoError(t, c.Validate())
}

func TestOf_UnknownValue(t *testing.T) {
	_, err := Of(AddressTypeValue("mailbox"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownCode))

	var ce *CodeError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "http://hl7.org/fhir/address-type", ce.System)
	assert.Equal(t, "mailbox", ce.Code)
}

func TestFrom(t *testing.T) {
	c, err := From[HTTPVerbValue]("PATCH")
	require.NoError(t, err)
	assert.Equal(t, "PATCH", c.String())

	_, err = From[HTTPVerbValue]("patch")
	assert.ErrorIs(t, err, ErrUnknownCode)

	_, err = From[HTTPVerbValue]("")
	assert.ErrorIs(t, err, ErrEmptyCode)
}

func TestMustOf_Panics(t *testing.T) {
	assert.NotPanics(t, func() { MustOf(IssueSeverityError) })
	assert.Panics(t, func() { MustOf(IssueSeverityValue("bogus")) })
}

func TestParse_CodesWithSymbols(t *testing.T) {
	v, err := Parse[QuantityComparatorValue]("<=")
	require.NoError(t, err)
	assert.Equal(t, QuantityComparatorLessOrEqual, v)
}

func TestValues_DefinitionOrder(t *testing.T) {
	assert.Equal(t, []AddressTypeValue{AddressTypePostal, AddressTypePhysical, AddressTypeBoth}, Values[AddressTypeValue]())
	assert.Len(t, Values[IssueTypeValue](), 31)
	assert.Len(t, Values[DataAbsentReasonValue](), 15)
}

func TestValues_AllAccepted(t *testing.T) {
	for _, v := range Values[RequestStatusValue]() {
		_, err := Of(v)
		assert.NoError(t, err, v)
	}
}

func TestSystemOf(t *testing.T) {
	cs := SystemOf[AdministrativeGenderValue]()
	assert.Equal(t, "http://hl7.org/fhir/administrative-gender", cs.URL())
	assert.Equal(t, "http://hl7.org/fhir/ValueSet/administrative-gender", cs.ValueSet())
	assert.Equal(t, "4.0.1", cs.Version())
	assert.Equal(t, 4, cs.Len())
}

func TestCode_Zero(t *testing.T) {
	var c AddressUse
	assert.True(t, c.IsZero())
	assert.False(t, c.HasValue())
	assert.Equal(t, "", c.String())
	assert.Equal(t, "", c.Display())
	assert.Equal(t, Coding{}, c.Coding())

	err := c.Validate()
	assert.ErrorIs(t, err, ErrEmptyElement)
	var ce *CodeError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "http://hl7.org/fhir/address-use", ce.System)

	_, buildErr := NewBuilder[AddressUseValue]().Build()
	assert.Equal(t, buildErr.Error(), err.Error())
}

func TestCode_Coding(t *testing.T) {
	c := MustOf(ContactPointSystemEmail)
	assert.Equal(t, Coding{
		System:  "http://hl7.org/fhir/contact-point-system",
		Version: "4.0.1",
		Code:    "email",
		Display: "Email",
	}, c.Coding())
}

func TestCode_Equal(t *testing.T) {
	a := MustOf(NameUseOfficial)
	b := MustOf(NameUseOfficial)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(MustOf(NameUseUsual)))

	withID, err := a.ToBuilder().ID("n1").Build()
	require.NoError(t, err)
	assert.False(t, a.Equal(withID))

	ext := MustDataAbsent(DataAbsentReasonMasked)
	x1, err := NewBuilder[NameUseValue]().Extension(ext).Build()
	require.NoError(t, err)
	x2, err := NewBuilder[NameUseValue]().Extension(ext).Build()
	require.NoError(t, err)
	assert.True(t, x1.Equal(x2))
	assert.False(t, x1.Equal(a))
}

func TestCode_ExtensionsAreCopied(t *testing.T) {
	note, flag, count := "note", true, 3
	c, err := NewBuilder[EventStatusValue]().
		Value(EventStatusCompleted).
		Extension(
			Extension{URL: "http://example.org/coding", ValueCoding: &Coding{Code: "a"}},
			Extension{URL: "http://example.org/string", ValueString: &note},
			Extension{URL: "http://example.org/flag", ValueBoolean: &flag},
			Extension{URL: "http://example.org/count", ValueInteger: &count},
			Extension{URL: "http://example.org/nested", Extension: []Extension{
				{URL: "inner", ValueString: &note},
			}},
		).
		Build()
	require.NoError(t, err)

	exts := c.Extensions()
	exts[0].URL = "changed"
	exts[0].ValueCoding.Code = "b"
	*exts[1].ValueString = "reader"
	*exts[2].ValueBoolean = false
	*exts[3].ValueInteger = 4
	*exts[4].Extension[0].ValueString = "reader"

	got := c.Extensions()
	assert.Equal(t, "http://example.org/coding", got[0].URL)
	assert.Equal(t, "a", got[0].ValueCoding.Code)
	assert.Equal(t, "note", *got[1].ValueString)
	assert.True(t, *got[2].ValueBoolean)
	assert.Equal(t, 3, *got[3].ValueInteger)
	assert.Equal(t, "note", *got[4].Extension[0].ValueString)
	assert.Equal(t, "note", note)
}

func TestCode_ToBuilderRoundTrip(t *testing.T) {
	orig, err := NewBuilder[DaysOfWeekValue]().ID("d1").Value(DaysOfWeekFri).Build()
	require.NoError(t, err)

	changed, err := orig.ToBuilder().Value(DaysOfWeekSat).Build()
	require.NoError(t, err)

	assert.Equal(t, "fri", orig.String())
	assert.Equal(t, "sat", changed.String())
	assert.Equal(t, "d1", changed.ID())
}

func TestDataAbsent(t *testing.T) {
	ext, err := DataAbsent(DataAbsentReasonAskedDeclined)
	require.NoError(t, err)
	assert.Equal(t, DataAbsentReasonURL, ext.URL)
	require.NotNil(t, ext.ValueCode)
	assert.Equal(t, "asked-declined", *ext.ValueCode)
	assert.NoError(t, ext.Validate())
}

func TestDataAbsent_UnknownReason(t *testing.T) {
	_, err := DataAbsent(DataAbsentReasonValue("bogus"))
	assert.ErrorIs(t, err, ErrUnknownCode)
	assert.Panics(t, func() { MustDataAbsent("bogus") })
}
