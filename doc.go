/*
 * doc.go, part of memplot.
 *
 * Copyright 2023 Raul Mera <rmera{at}usachDOTcl>
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

/*Package memplot turns pre-computed membrane simulation analysis output into
static plots. It reads the tabular and array files produced by
molecular-dynamics post-processing (peptide z trajectories with protein contact
lists, leaflet surface grids, curvature and density maps, and order-parameter
tables) and prepares them for rendering.

The package itself only holds the data model and the file readers. The
derivation of plot limits, grid reshaping and frame-window selection lives in
the deriv subpackage, the gonum/plot rendering in render, and the command-line
tool in cmd/memplot.

	**memplot capabilities**

    Reads peptide trajectory tables (time, leaflet z bounds, absolute z and
	per-frame contact residue lists), transparently decompressing gzip and
	zstd inputs.

    Builds residue/frame contact matrices and per-residue contact fractions.

    Reads axis-annotated numeric grids (density and curvature maps) and
	per-frame flat leaflet surfaces.

    Reads carbon-deuterium (SCH) and carbon-carbon (SCC) order parameter
	tables and aggregates them per carbon position.

    Plots all of the above as heatmaps, contour maps and line plots via
	gonum.org/v1/plot.
*/
package memplot
