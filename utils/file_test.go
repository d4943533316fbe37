package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trungle-dev/docqa-be/utils"
)

func TestSafeFileName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"notes.txt", "notes.txt"},
		{"My Report.pdf", "My_Report.pdf"},
		{"../../etc/passwd", "passwd"},
		{"/etc/shadow", "shadow"},
		{"..", "_"},
		{".", "_"},
		{"deck (final).pptx", "deck__final_.pptx"},
		{"résumé.pdf", "r_sum_.pdf"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, utils.SafeFileName(tc.in))
		})
	}
}
