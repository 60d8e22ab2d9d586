package common

import (
	"strings"
	"testing"
)

func TestValidator_CollectsAllFieldErrors(t *testing.T) {
	v := NewValidator().
		Field("barcode", "", Required, Barcode).
		Field("id", "not-a-uuid", UUID)
	if !v.HasErrors() {
		t.Fatal("expected validation errors")
	}
	err := v.Error()
	if err == nil {
		t.Fatal("Error() = nil, want combined error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "barcode") || !strings.Contains(msg, "id") {
		t.Errorf("combined error %q should name both fields", msg)
	}
}

func TestValidator_CleanInputHasNoErrors(t *testing.T) {
	v := NewValidator().
		Field("barcode", "3017620422003", Required, Barcode).
		Field("source_image", "/301/762/042/2003/1.jpg", MaxLength(255))
	if v.HasErrors() {
		t.Fatalf("unexpected errors: %v", v.Error())
	}
	if err := v.Error(); err != nil {
		t.Fatalf("Error() = %v, want nil", err)
	}
}

func TestMaxLength(t *testing.T) {
	if err := MaxLength(3)("f", "abc"); err != nil {
		t.Errorf("length at the limit should pass, got %v", err)
	}
	if err := MaxLength(3)("f", "abcd"); err == nil {
		t.Error("length over the limit should fail")
	}
}

func TestBarcode(t *testing.T) {
	cases := []struct {
		value string
		ok    bool
	}{
		{"3017620422003", true}, // GTIN-13
		{"40111445", true},      // EAN-8
		{"", true},              // optional unless paired with Required
		{"1234567", false},      // too short
		{"123456789012345", false},
		{"30176204A2003", false},
	}
	for _, c := range cases {
		err := Barcode("barcode", c.value)
		if (err == nil) != c.ok {
			t.Errorf("Barcode(%q) error = %v, want ok=%t", c.value, err, c.ok)
		}
	}
}
