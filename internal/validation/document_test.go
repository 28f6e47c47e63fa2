package validation

import "testing"

func TestNormalizeDocument(t *testing.T) {
	cases := map[string]string{
		"529.982.247-25":     "52998224725",
		"11.222.333/0001-81": "11222333000181",
		"52998224725":        "52998224725",
		"abc":                "",
	}
	for input, want := range cases {
		if got := NormalizeDocument(input); got != want {
			t.Errorf("NormalizeDocument(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestIsValidCPF(t *testing.T) {
	valid := []string{
		"529.982.247-25",
		"52998224725",
	}
	for _, value := range valid {
		if !IsValidCPF(value) {
			t.Errorf("expected %q to be a valid CPF", value)
		}
	}

	invalid := []string{
		"123.456.789-00",
		"529.982.247-26",
		"111.111.111-11",
		"5299822472",
		"529982247250",
		"",
	}
	for _, value := range invalid {
		if IsValidCPF(value) {
			t.Errorf("expected %q to be rejected as CPF", value)
		}
	}
}

func TestIsValidCNPJ(t *testing.T) {
	valid := []string{
		"11.222.333/0001-81",
		"11222333000181",
	}
	for _, value := range valid {
		if !IsValidCNPJ(value) {
			t.Errorf("expected %q to be a valid CNPJ", value)
		}
	}

	invalid := []string{
		"11.222.333/0001-82",
		"11.111.111/1111-11",
		"1122233300018",
		"112223330001811",
		"",
	}
	for _, value := range invalid {
		if IsValidCNPJ(value) {
			t.Errorf("expected %q to be rejected as CNPJ", value)
		}
	}
}

func TestIsDocument_AcceptsEitherKind(t *testing.T) {
	if !IsDocument("529.982.247-25") {
		t.Error("expected CPF to be accepted")
	}
	if !IsDocument("11.222.333/0001-81") {
		t.Error("expected CNPJ to be accepted")
	}
	if IsDocument("not-a-document") {
		t.Error("expected garbage to be rejected")
	}
}
