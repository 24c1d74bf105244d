package slug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Coro Norte", "coro-norte"},
		{"diacritics", "Ave María", "ave-maria"},
		{"spanish", "Canción de Cuna Anónima", "cancion-de-cuna-anonima"},
		{"punctuation runs", "Rock & Roll -- Live!!", "rock-roll-live"},
		{"leading and trailing", "  ¡Hola!  ", "hola"},
		{"underscores", "snake_case_title", "snake-case-title"},
		{"digits", "Opus 23, No. 4", "opus-23-no-4"},
		{"transliterated", "Straße Ærø Łódź", "strasse-aero-lodz"},
		{"only punctuation", "!!! ???", ""},
		{"empty", "", ""},
		{"already slug", "coro-norte", "coro-norte"},
		{"non latin dropped", "合唱 Choir", "choir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.in))
		})
	}
}

func TestMakeIsIdempotent(t *testing.T) {
	inputs := []string{"Coro Norte", "Ave María", "Straße", "  a -- b  ", "Opus 23, No. 4"}
	for _, in := range inputs {
		once := Make(in)
		assert.Equal(t, once, Make(once), "input %q", in)
		assert.Equal(t, once, Make(in), "input %q", in)
	}
}

func TestMakeTruncates(t *testing.T) {
	long := strings.Repeat("ab ", 60)
	got := Make(long)

	assert.LessOrEqual(t, len(got), MaxLength)
	assert.False(t, strings.HasSuffix(got, "-"))
	assert.True(t, Valid(got))
}

func TestPtr(t *testing.T) {
	p := Ptr("Coro Norte")
	if assert.NotNil(t, p) {
		assert.Equal(t, "coro-norte", *p)
	}
	assert.Nil(t, Ptr("***"))
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("coro-norte"))
	assert.True(t, Valid("a1"))
	assert.False(t, Valid(""))
	assert.False(t, Valid("Coro-Norte"))
	assert.False(t, Valid("coro--norte"))
	assert.False(t, Valid("-coro"))
	assert.False(t, Valid("coro norte"))
	assert.False(t, Valid(strings.Repeat("a", MaxLength+1)))
}
