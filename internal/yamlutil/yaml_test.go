package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

type sample struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	var s sample
	if err := Unmarshal([]byte("name: doc\ncount: 3\n"), &s); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if s.Name != "doc" || s.Count != 3 {
		t.Errorf("Unmarshal result = %+v, want {doc 3}", s)
	}
}

func TestUnmarshal_Validation(t *testing.T) {
	t.Parallel()

	var s sample
	if err := Unmarshal(nil, &s); !errors.Is(err, ErrNilData) {
		t.Errorf("nil data error = %v, want ErrNilData", err)
	}
	if err := Unmarshal([]byte("name: x"), nil); !errors.Is(err, ErrNilDestination) {
		t.Errorf("nil destination error = %v, want ErrNilDestination", err)
	}

	big := []byte("name: " + strings.Repeat("x", MaxInputSize))
	if err := Unmarshal(big, &s); !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("oversized input error = %v, want ErrInputTooLarge", err)
	}
}

func TestUnmarshalStrict_RejectsUnknownFields(t *testing.T) {
	t.Parallel()

	var s sample
	if err := UnmarshalStrict([]byte("name: x\nbogus: 1\n"), &s); err == nil {
		t.Error("UnmarshalStrict accepted unknown field")
	}
}
