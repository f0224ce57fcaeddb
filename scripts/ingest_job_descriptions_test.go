package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleFromFileName(t *testing.T) {
	cases := map[string]string{
		"Backend_Engineer.pdf":     "Backend Engineer",
		"senior-go--dev.docx":      "senior go dev",
		"plain.txt":                "plain",
		"_Data__Analyst_.pdf":      "Data Analyst",
		"Product Manager (EU).doc": "Product Manager (EU)",
		"no_extension":             "no extension",
	}

	for name, want := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, want, titleFromFileName(name))
		})
	}
}
