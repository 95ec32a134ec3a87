package interp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzVerify(f *testing.F) {
	f.Add("")
	f.Add("[]")
	f.Add("][")
	f.Add("+[>+<-]")
	f.Add("[[]")
	f.Add("a [comment] with [brackets]")

	f.Fuzz(func(t *testing.T, text string) {
		assert := assert.New(t)

		err := Program(text).Verify()

		// Verification accepts exactly the programs whose bracket
		// counts pair off.
		opens := strings.Count(text, "[")
		closes := strings.Count(text, "]")
		if opens == closes {
			assert.NoError(err)
		} else {
			assert.Equal(ErrUnbalanced, err)
		}
	})
}
