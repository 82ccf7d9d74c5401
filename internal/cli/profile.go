// internal/cli/profile.go
package cli

import (
	"context"
	"fmt"
	"strings"

	"profseq-core/alphabet"
	"profseq-core/fasta"
	"profseq-core/profile"
)

// Profile input formats.
const (
	ProfileAuto  = "auto"
	ProfileTSV   = "tsv"
	ProfileFASTA = "fasta"
)

// profileFormat resolves "auto" by file name: .tsv / .counts (optionally
// gzipped) are count tables, anything else is an aligned FASTA.
func profileFormat(path, format string) (string, error) {
	switch format {
	case ProfileTSV, ProfileFASTA:
		return format, nil
	case "", ProfileAuto:
		base := strings.TrimSuffix(strings.ToLower(path), ".gz")
		if strings.HasSuffix(base, ".tsv") || strings.HasSuffix(base, ".counts") {
			return ProfileTSV, nil
		}
		return ProfileFASTA, nil
	}
	return "", fmt.Errorf("invalid --profile-format %q (want auto, tsv or fasta)", format)
}

// LoadProfile reads a profile from a counts TSV or an aligned FASTA file.
func LoadProfile(ctx context.Context, path, format string, a *alphabet.Alphabet) (*profile.Profile, error) {
	f, err := profileFormat(path, format)
	if err != nil {
		return nil, err
	}
	if f == ProfileTSV {
		rc, err := fasta.Open(path)
		if err != nil {
			return nil, err
		}
		defer func() { _ = rc.Close() }()
		return profile.ReadTSV(rc, path, a)
	}

	recs, err := fasta.ReadAll(ctx, path)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(recs))
	rows := make([][]byte, len(recs))
	for i, r := range recs {
		ids[i], rows[i] = r.ID, r.Seq
	}
	p, err := profile.FromRows(a, ids, rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}
