/*
 * convert.go, part of goDock.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package convert

import (
	"os"
	"os/exec"
	"strings"
)

// Strategy is the interface for one way of producing a PDBQT file from a
// structure file. Each implementation wraps one external program, with its
// own invocation syntax and its own idea of what failure looks like.
type Strategy interface {

	//Name identifies the underlying program, for error reporting.
	Name() string

	//Convert reads the structure in the file in and writes its
	//docking-ready version to the file out. It blocks until the external
	//program is done. It returns an error if the invocation fails or if
	//out is missing afterwards; on success, out exists on disk.
	Convert(in, out string) error
}

// Pipeline tries an ordered sequence of conversion strategies, keeping the
// result of the first one that works.
type Pipeline struct {
	strategies []Strategy
}

// NewPipeline returns a Pipeline over the given strategies, in the given
// order. With no arguments it uses the default sequence: AutoDockTools'
// prepare_ligand4.py, then OpenBabel in direct mode, then the legacy
// AutoDockTools library through pythonsh.
func NewPipeline(strategies ...Strategy) *Pipeline {
	if len(strategies) == 0 {
		strategies = []Strategy{NewADTPrepare(), NewOBabel(), NewPythonsh()}
	}
	return &Pipeline{strategies}
}

// Run attempts each strategy in order on the file in, stopping at the first
// success, and returns the path to the produced artifact. A strategy's
// failure is not reported to the caller: the next strategy simply starts,
// from the original input (never from another strategy's leftovers). Only
// when every strategy has failed does Run return an error, which lists what
// each program had to say.
func (P *Pipeline) Run(in, out string) (string, error) {
	fails := make([]string, 0, len(P.strategies))
	for _, s := range P.strategies {
		err := s.Convert(in, out)
		if err == nil {
			return out, nil
		}
		fails = append(fails, s.Name()+": "+err.Error())
		//a failed program may still have left a partial file behind,
		//which the next strategy, or the caller, must not mistake for
		//a conversion.
		os.Remove(out)
	}
	return "", Error{ConversionExhausted + " [" + strings.Join(fails, " | ") + "]", "Pipeline", in, []string{"Run"}}
}

// run invokes cmdline through the shell and waits for it to finish, the
// same way goChem runs QM programs.
func run(program, cmdline, in string) error {
	cmd := exec.Command("sh", "-c", cmdline)
	out, err := cmd.CombinedOutput()
	if err != nil {
		msg := ErrNotRunning
		if t := strings.TrimSpace(string(out)); t != "" {
			msg = msg + ": " + t
		}
		return Error{msg, program, in, []string{"run"}}
	}
	return nil
}

// artifactCheck verifies that the output file was actually produced. A
// clean exit alone proves nothing: at least obabel is known to exit 0 on
// conversions that wrote no output, so the check on disk is mandatory after
// every invocation.
func artifactCheck(program, out string) error {
	if _, err := os.Stat(out); err != nil {
		return Error{ErrNoArtifact, program, out, []string{"artifactCheck"}}
	}
	return nil
}
