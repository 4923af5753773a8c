package cmd

import (
	"testing"
)

func TestParseMilestoneRef(t *testing.T) {
	testcases := []struct {
		input     string
		project   string
		milestone string
		valid     bool
	}{
		{
			input:     "7/12",
			project:   "7",
			milestone: "12",
			valid:     true,
		},
		{
			input:     " 7 / 12 ",
			project:   " 7 ",
			milestone: " 12 ",
			valid:     true,
		},
		{
			input: "",
			valid: false,
		},
		{
			input: "7",
			valid: false,
		},
		{
			input: "7/",
			valid: false,
		},
		{
			input: "/12",
			valid: false,
		},
		{
			input: "7/12/extra",
			valid: false,
		},
	}

	for _, testcase := range testcases {
		t.Run(testcase.input, func(t *testing.T) {
			ref, err := parseMilestoneRef(testcase.input)

			if testcase.valid {
				if err != nil {
					t.Fatalf("expected %q to parse, got %v", testcase.input, err)
				}

				if ref.project != testcase.project || ref.milestone != testcase.milestone {
					t.Fatalf("expected (%q, %q), got (%q, %q)", testcase.project, testcase.milestone, ref.project, ref.milestone)
				}
			} else if err == nil {
				t.Fatalf("expected %q to be rejected, got %v", testcase.input, ref)
			}
		})
	}
}
