package fhircode

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contact struct {
	System ContactPointSystem `json:"system"`
	Use    ContactPointUse    `json:"use"`
}

func TestCode_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(contact{System: MustOf(ContactPointSystemPhone)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"system":"phone","use":null}`, string(data))
}

func TestCode_UnmarshalJSON(t *testing.T) {
	var c contact
	require.NoError(t, json.Unmarshal([]byte(`{"system":"sms","use":"mobile"}`), &c))
	assert.Equal(t, "sms", c.System.String())
	assert.Equal(t, "mobile", c.Use.String())

	require.NoError(t, json.Unmarshal([]byte(`{"system":null}`), &c))
	assert.False(t, c.System.HasValue())
}

func TestCode_UnmarshalJSON_Invalid(t *testing.T) {
	var c contact
	err := json.Unmarshal([]byte(`{"system":"pigeon"}`), &c)
	assert.ErrorIs(t, err, ErrUnknownCode)

	err = json.Unmarshal([]byte(`{"system":42}`), &c)
	assert.Error(t, err)
}

func TestPutField(t *testing.T) {
	c, err := NewBuilder[AdministrativeGenderValue]().ID("g1").Value(AdministrativeGenderFemale).Build()
	require.NoError(t, err)

	obj := map[string]json.RawMessage{}
	require.NoError(t, PutField(obj, "gender", c))
	assert.JSONEq(t, `"female"`, string(obj["gender"]))
	assert.JSONEq(t, `{"id":"g1"}`, string(obj["_gender"]))
}

func TestPutField_ValueOnly(t *testing.T) {
	obj := map[string]json.RawMessage{}
	require.NoError(t, PutField(obj, "gender", MustOf(AdministrativeGenderMale)))
	assert.Contains(t, obj, "gender")
	assert.NotContains(t, obj, "_gender")
}

func TestPutField_ExtensionOnly(t *testing.T) {
	c, err := NewBuilder[AdministrativeGenderValue]().Extension(MustDataAbsent(DataAbsentReasonAskedDeclined)).Build()
	require.NoError(t, err)

	obj := map[string]json.RawMessage{}
	require.NoError(t, PutField(obj, "gender", c))
	assert.NotContains(t, obj, "gender")
	assert.JSONEq(t, `{"extension":[{"url":"http://hl7.org/fhir/StructureDefinition/data-absent-reason","valueCode":"asked-declined"}]}`,
		string(obj["_gender"]))
}

func TestPutField_Zero(t *testing.T) {
	obj := map[string]json.RawMessage{}
	require.NoError(t, PutField(obj, "gender", AdministrativeGender{}))
	assert.Empty(t, obj)
}

func TestGetField(t *testing.T) {
	obj := map[string]json.RawMessage{}
	require.NoError(t, json.Unmarshal([]byte(`{
		"gender": "other",
		"_gender": {"id": "g2", "extension": [{"url": "http://example.org/e", "valueString": "x"}]}
	}`), &obj))

	c, err := GetField[AdministrativeGenderValue](obj, "gender")
	require.NoError(t, err)
	assert.Equal(t, "other", c.String())
	assert.Equal(t, "g2", c.ID())
	assert.Len(t, c.Extensions(), 1)
}

func TestGetField_RoundTrip(t *testing.T) {
	want, err := NewBuilder[IssueTypeValue]().
		ID("it").
		Value(IssueTypeCodeInvalid).
		Extension(MustDataAbsent(DataAbsentReasonError)).
		Build()
	require.NoError(t, err)

	obj := map[string]json.RawMessage{}
	require.NoError(t, PutField(obj, "code", want))
	got, err := GetField[IssueTypeValue](obj, "code")
	require.NoError(t, err)
	assert.True(t, want.Equal(got))
}

func TestGetField_Missing(t *testing.T) {
	c, err := GetField[AdministrativeGenderValue](map[string]json.RawMessage{}, "gender")
	require.NoError(t, err)
	assert.True(t, c.IsZero())
}

func TestGetField_IDOnly(t *testing.T) {
	obj := map[string]json.RawMessage{"_gender": json.RawMessage(`{"id":"g1"}`)}
	_, err := GetField[AdministrativeGenderValue](obj, "gender")
	assert.ErrorIs(t, err, ErrEmptyElement)
}

func TestGetField_NullValueWithExtension(t *testing.T) {
	obj := map[string]json.RawMessage{
		"gender":  json.RawMessage(`null`),
		"_gender": json.RawMessage(`{"extension":[{"url":"http://example.org/e","valueBoolean":true}]}`),
	}
	c, err := GetField[AdministrativeGenderValue](obj, "gender")
	require.NoError(t, err)
	assert.False(t, c.HasValue())
}

func TestGetField_InvalidElement(t *testing.T) {
	obj := map[string]json.RawMessage{
		"gender":  json.RawMessage(`"male"`),
		"_gender": json.RawMessage(`{"extension":[{"url":"http://example.org/e"}]}`),
	}
	_, err := GetField[AdministrativeGenderValue](obj, "gender")
	assert.ErrorIs(t, err, ErrInvalidExtension)
}
