package archetype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/persona/internal/i18n"
)

func TestCodes(t *testing.T) {
	codes := Codes()
	require.Len(t, codes, 16)
	assert.Equal(t, "ESTJ", codes[0])
	assert.Equal(t, "INFP", codes[15])
}

func TestAll_CoversEveryCode(t *testing.T) {
	assert.Len(t, All(), 16)
	for _, code := range Codes() {
		a, err := Get(code)
		require.NoError(t, err, code)
		assert.Equal(t, code, a.Code)
		assert.Len(t, a.Traits, 3, code)
	}
}

func TestGet(t *testing.T) {
	a, err := Get("intj")
	require.NoError(t, err)
	assert.Equal(t, "The Architect", a.Name.In(i18n.English))
	assert.Equal(t, "建筑师", a.Name.In(i18n.Chinese))

	_, err = Get("XXXX")
	assert.Error(t, err)
}

func TestGet_ReturnsCopy(t *testing.T) {
	a, err := Get("ENFP")
	require.NoError(t, err)
	a.Traits[0] = i18n.Text{EN: "changed"}

	again, err := Get("ENFP")
	require.NoError(t, err)
	assert.NotEqual(t, "changed", again.Traits[0].EN)
}

func TestValidate(t *testing.T) {
	require.NoError(t, validate(seedArchetypes))

	err := validate(seedArchetypes[1:])
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no archetype for code "INTJ"`)
}
