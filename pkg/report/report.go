/*
Package report writes per-column conservation scores as csv, tsv, json or
yaml
*/
package report

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/virus-evolution/goconserve/pkg/msa"
)

// Format is an output format
type Format string

const (
	CSV  Format = "csv"
	TSV  Format = "tsv"
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat returns the Format called s
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv", "":
		return CSV, nil
	case "tsv":
		return TSV, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return "", errors.Errorf("unknown output format %q (want csv, tsv, json or yaml)", s)
}

// Profile is the score sequence of one alignment, with the residues of its
// reference sequence for labelling
type Profile struct {
	Name     string    `json:"name" yaml:"name"`
	Residues string    `json:"residues,omitempty" yaml:"residues,omitempty"`
	Scores   []float64 `json:"scores" yaml:"scores"`
	Error    string    `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewProfile labels scores with row ref of A
func NewProfile(name string, A *msa.Alignment, ref int, scores []float64) Profile {
	return Profile{
		Name:     name,
		Residues: string(A.Row(ref)),
		Scores:   scores,
	}
}

// Failed reports whether the profile stands for an alignment that could not
// be scored
func (p Profile) Failed() bool { return p.Error != "" }

// Writer writes profiles in one format
type Writer struct {
	Format Format
	// Offset is added to the 1-based column numbers
	Offset int
	// Precision is the number of decimals in tabular output, -1 for the
	// fewest digits that represent the score exactly
	Precision int
}

// Write writes profiles to w. Tabular output has one row per column and adds
// an alignment column when there is more than one profile. Failed profiles
// only appear in json and yaml output.
func (wr Writer) Write(w io.Writer, profiles ...Profile) error {
	switch wr.Format {
	case CSV:
		return wr.writeTable(w, ',', profiles)
	case TSV:
		return wr.writeTable(w, '\t', profiles)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(profiles), "writing json")
	case YAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(profiles); err != nil {
			return errors.Wrap(err, "writing yaml")
		}
		return errors.Wrap(enc.Close(), "writing yaml")
	}
	return errors.Errorf("unknown output format %q", string(wr.Format))
}

func (wr Writer) writeTable(w io.Writer, comma rune, profiles []Profile) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma

	named := len(profiles) > 1

	header := []string{"position", "residue", "score"}
	if named {
		header = append([]string{"alignment"}, header...)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, p := range profiles {
		if p.Failed() {
			continue
		}
		for i, s := range p.Scores {
			residue := ""
			if i < len(p.Residues) {
				residue = p.Residues[i : i+1]
			}
			row := []string{
				strconv.Itoa(i + 1 + wr.Offset),
				residue,
				strconv.FormatFloat(s, 'f', wr.Precision, 64),
			}
			if named {
				row = append([]string{p.Name}, row...)
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Wrapf(err, "writing %s", wr.Format)
	}
	return nil
}
