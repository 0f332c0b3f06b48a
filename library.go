/*
 * library.go, part of goDock.
 *
 * Copyright 2025 Raul Mera <rmeraa{at}academicos(dot)uta(dot)cl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package dock

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Ligand is one entry of a ligand library: the SMILES string of a molecule
// and a name for it, which will name every file derived from it.
type Ligand struct {
	SMILES string
	Name   string
}

// libFile bundles a possibly-decompressing reader with everything that has
// to be closed under it.
type libFile struct {
	io.Reader
	closers []func() error
}

func (l *libFile) Close() error {
	var ret error
	for _, f := range l.closers {
		if err := f(); err != nil {
			ret = err
		}
	}
	return ret
}

// openLibrary opens a ligand library file. Libraries are often shipped
// compressed, so .gz and .zst files are decompressed transparently, by
// extension.
func openLibrary(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, CError{UnableToOpen, name, []string{"openLibrary"}}
	}
	switch {
	case strings.HasSuffix(name, ".gz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, CError{err.Error(), name, []string{"gzip.NewReader", "openLibrary"}}
		}
		return &libFile{gz, []func() error{gz.Close, f.Close}}, nil
	case strings.HasSuffix(name, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, CError{err.Error(), name, []string{"zstd.NewReader", "openLibrary"}}
		}
		closez := func() error { zr.Close(); return nil }
		return &libFile{zr, []func() error{closez, f.Close}}, nil
	}
	return f, nil
}

// ReadLibrary reads a ligand library: one ligand per line, a SMILES string
// optionally followed by a name, whitespace-separated. Empty lines and
// lines starting with "#" are skipped. A ligand without a name is called
// ligand_N, N being its line number in the file (counting every line, also
// the skipped ones, so names stay stable when comments are added).
func ReadLibrary(name string) ([]*Ligand, error) {
	in, err := openLibrary(name)
	if err != nil {
		return nil, errDecorate(err, "ReadLibrary")
	}
	defer in.Close()
	ret := make([]*Ligand, 0, 10)
	scanner := bufio.NewScanner(in)
	linenu := 0
	for scanner.Scan() {
		linenu++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		l := &Ligand{SMILES: fields[0]}
		if len(fields) > 1 {
			l.Name = fields[1]
		} else {
			l.Name = fmt.Sprintf("ligand_%d", linenu)
		}
		ret = append(ret, l)
	}
	if err := scanner.Err(); err != nil {
		return nil, CError{err.Error(), name, []string{"ReadLibrary"}}
	}
	return ret, nil
}
