/*
 * doc.go, part of goDock.
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

//Package convert drives the external programs that turn a structure file
//into a docking-ready PDBQT file, in such a way that the choice of program
//is as separated as possible from the pipeline that needs the conversion.
//Several programs can do this job, none of them reliably for every
//molecule, so the package also provides a Pipeline that tries them in a
//fixed order and keeps the first result.
package convert
