/*
 * main.go, part of goDock.
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

//godock prepares a library of ligands, given as SMILES strings, for
//docking with AutoDock: each SMILES is turned into a 3D structure,
//converted to PDBQT, and translated so its centroid sits on the center of
//the docking grid. Each ligand is independent: one failing, at whatever
//stage, doesn't stop the batch.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	dock "github.com/rmera/godock"
	"github.com/rmera/godock/convert"
	"gonum.org/v1/gonum/mat"
)

func main() {
	outdir := flag.String("out", "prepared_ligands", "output directory for the processed ligands")
	plotname := flag.String("plot", "", "if given, plot a histogram of the applied displacements to this file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %s [flags] smiles_file grid_x grid_y grid_z\n\n"+
				"smiles_file contains one ligand per line: a SMILES string, optionally\n"+
				"followed by a name (.gz and .zst files are read transparently).\n"+
				"grid_x/y/z is the center of the docking grid, in Å.\n\nFlags:\n",
			os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	args := flag.Args()
	if len(args) != 4 {
		flag.Usage()
		os.Exit(2)
	}
	target := mat.NewVecDense(3, nil)
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(args[i+1], 64)
		if err != nil {
			log.Fatalf("The grid center coordinates must be numbers: %v", err)
		}
		target.SetVec(i, v)
	}
	ligands, err := dock.ReadLibrary(args[0])
	if err != nil {
		log.Fatal(err)
	}
	for _, d := range []string{"pdb", "pdbqt", "positioned"} {
		if err := os.MkdirAll(filepath.Join(*outdir, d), 0755); err != nil {
			log.Fatal(err)
		}
	}

	fmt.Printf("Processing ligands with grid center: %v, %v, %v\n",
		target.AtVec(0), target.AtVec(1), target.AtVec(2))
	fmt.Println(strings.Repeat("=", 60))

	obabel := convert.NewOBabel()
	pipeline := convert.NewPipeline()
	rep := new(dock.Report)
	for _, lig := range ligands {
		fmt.Printf("Processing %d: %s\n", rep.Total()+1, lig.Name)

		pdbfile := filepath.Join(*outdir, "pdb", lig.Name+".pdb")
		fmt.Println("  Converting SMILES to PDB...")
		if err := obabel.Gen3D(lig.SMILES, pdbfile); err != nil {
			fmt.Println("  ✗ Failed to convert SMILES to PDB")
			rep.AddFailure()
			continue
		}

		pdbqtfile := filepath.Join(*outdir, "pdbqt", lig.Name+".pdbqt")
		fmt.Println("  Converting PDB to PDBQT...")
		if _, err := pipeline.Run(pdbfile, pdbqtfile); err != nil {
			fmt.Println("  ✗ Failed to convert PDB to PDBQT")
			rep.AddFailure()
			continue
		}

		fmt.Println("  Repositioning near binding site...")
		positioned := filepath.Join(*outdir, "positioned", lig.Name+".pdbqt")
		t, err := reposition(pdbqtfile, positioned, target)
		if err != nil {
			fmt.Printf("  ✗ Failed to reposition ligand: %v\n", err)
			rep.AddFailure()
			continue
		}
		rep.AddSuccess(t)
		fmt.Printf("  ✓ Successfully processed %s\n\n", lig.Name)
	}

	fmt.Println(strings.Repeat("=", 60))
	rep.Summary(os.Stdout)
	fmt.Printf("Positioned PDBQT files are in: %s\n\n", filepath.Join(*outdir, "positioned"))
	suggestDocking(*outdir)
	if *plotname != "" {
		if err := rep.Histogram(*plotname); err != nil {
			log.Printf("Couldn't plot the displacement histogram: %v", err)
		}
	}
}

// reposition carries one converted ligand from pdbqt file to positioned
// pdbqt file, centroid on target. It returns the translation that was
// applied. Nothing is written if any step fails.
func reposition(in, out string, target *mat.VecDense) (*mat.VecDense, error) {
	S, err := dock.PDBQTFileRead(in)
	if err != nil {
		return nil, err
	}
	t, err := S.Reposition(target)
	if err != nil {
		return nil, err
	}
	if err := dock.PDBQTFileWrite(out, S); err != nil {
		return nil, err
	}
	return t, nil
}

// suggestDocking prints a shell loop the user can paste to dock the
// prepared ligands, one by one, with autogrid4/autodock4.
func suggestDocking(outdir string) {
	fmt.Println("Now you can dock each ligand:")
	fmt.Printf("for ligand in %s/*.pdbqt; do\n", filepath.Join(outdir, "positioned"))
	fmt.Println("    cp \"$ligand\" l.pdbqt")
	fmt.Println("    rm r.dlg r.glg 2>/dev/null")
	fmt.Println("    autogrid4 -p r.gpf -l r.glg")
	fmt.Println("    autodock4 -p r.dpf -l r.dlg")
	fmt.Println("    # Process results and rename output files")
	fmt.Println("done")
}
