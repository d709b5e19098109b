// SPDX-License-Identifier: MPL-2.0

package fortune

import "github.com/fortune-kind/fortune-kind/internal/corpus"

// PickWeighted picks one file with probability proportional to its size.
// Larger files hold more quotes, so weighting by size approximates a uniform
// draw over quotes without parsing every file. When every file is empty the
// pick falls back to uniform.
func PickWeighted(rng Rand, files []corpus.File) (corpus.File, error) {
	if len(files) == 0 {
		return corpus.File{}, ErrEmptyCorpus
	}

	var total int64
	for _, f := range files {
		if f.Size > 0 {
			total += f.Size
		}
	}
	if total == 0 {
		return files[rng.IntN(len(files))], nil
	}

	r := rng.Int64N(total)
	for _, f := range files {
		if f.Size <= 0 {
			continue
		}
		if r < f.Size {
			return f, nil
		}
		r -= f.Size
	}
	// Unreachable while r < total.
	return files[len(files)-1], nil
}

// PickUniform picks one file uniformly, ignoring sizes.
func PickUniform(rng Rand, files []corpus.File) (corpus.File, error) {
	if len(files) == 0 {
		return corpus.File{}, ErrEmptyCorpus
	}
	return files[rng.IntN(len(files))], nil
}
