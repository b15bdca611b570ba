package emit

import (
	"fmt"
	"io"
	"sort"

	"github.com/google/uuid"

	"github.com/chazu/panelgo/pkg/feature"
	"github.com/chazu/panelgo/pkg/geom"
	"github.com/chazu/panelgo/pkg/render"
)

// gerberScale is the number of RS-274X integer units per millimeter at
// %FSLAX34Y34*% (3 integer digits, 4 decimal digits).
const gerberScale = 10000.0

func gerberCoord(v float64) int64 {
	return int64(v * gerberScale)
}

// WriteGerberOutline writes r's outer boundary and holes as an RS-274X
// region (G36/G37), the board-edge ("Edge.Cuts") layer. Grounded on
// original_source/src/drill.rs's header+command-stream shape, with the
// polygon commands generalized from a drill hit list to a filled region.
func WriteGerberOutline(w io.Writer, r *render.Rendered) error {
	jobID := uuid.New().String()
	fmt.Fprintf(w, "G04 panelgo edge cuts, job %s*\n", jobID)
	io.WriteString(w, "%FSLAX34Y34*%\n")
	fmt.Fprint(w, "%MOMM*%\n")
	fmt.Fprint(w, "%LPD*%\n")

	if err := writeRegion(w, r.Outer); err != nil {
		return err
	}
	for _, hole := range r.Inners {
		fmt.Fprint(w, "%LPC*%\n")
		if err := writeRegion(w, hole); err != nil {
			return err
		}
		fmt.Fprint(w, "%LPD*%\n")
	}

	fmt.Fprint(w, "M02*\n")
	return nil
}

func writeRegion(w io.Writer, ring geom.Ring) error {
	if len(ring) == 0 {
		return nil
	}
	fmt.Fprint(w, "G36*\n")
	first := ring[0]
	fmt.Fprintf(w, "X%dY%dD02*\n", gerberCoord(first.X), gerberCoord(first.Y))
	for i := 1; i <= len(ring); i++ {
		p := ring[i%len(ring)]
		fmt.Fprintf(w, "X%dY%dD01*\n", gerberCoord(p.X), gerberCoord(p.Y))
	}
	fmt.Fprint(w, "G37*\n")
	return nil
}

// WriteGerberLayer writes every surface feature tagged with layer as a
// flashed circular aperture (a solder pad uses a circle of its larger
// side), one aperture define per distinct size. Grounded on the same region-and-flash command shape as
// WriteGerberOutline, generalized from the board edge to an arbitrary
// copper/mask/legend layer.
func WriteGerberLayer(w io.Writer, r *render.Rendered, layer feature.Layer) error {
	var flashes []feature.SurfaceFeature
	for _, sf := range r.SurfaceFeatures {
		if sf.Layer() == layer {
			flashes = append(flashes, sf)
		}
	}

	fmt.Fprintf(w, "G04 panelgo layer %s*\n", layer.String())
	io.WriteString(w, "%FSLAX34Y34*%\n")
	fmt.Fprint(w, "%MOMM*%\n")

	apertures := map[float64]int{}
	nextAD := 10
	for _, sf := range flashes {
		size := apertureSize(sf)
		if _, ok := apertures[size]; !ok {
			apertures[size] = nextAD
			fmt.Fprintf(w, "%%ADD%dC,%.4f*%%\n", nextAD, size)
			nextAD++
		}
	}

	sizes := make([]float64, 0, len(apertures))
	for s := range apertures {
		sizes = append(sizes, s)
	}
	sort.Float64s(sizes)

	current := -1
	for _, sf := range flashes {
		size := apertureSize(sf)
		ad := apertures[size]
		if ad != current {
			fmt.Fprintf(w, "D%d*\n", ad)
			current = ad
		}
		c := apertureCenter(sf)
		fmt.Fprintf(w, "X%dY%dD03*\n", gerberCoord(c.X), gerberCoord(c.Y))
	}

	fmt.Fprint(w, "M02*\n")
	return nil
}

func apertureSize(sf feature.SurfaceFeature) float64 {
	switch v := sf.(type) {
	case feature.DrillHit:
		return v.Diameter
	case feature.SolderPad:
		if v.Width > v.Height {
			return v.Width
		}
		return v.Height
	default:
		return 1.0
	}
}

func apertureCenter(sf feature.SurfaceFeature) geom.Point {
	switch v := sf.(type) {
	case feature.DrillHit:
		return v.Center
	case feature.SolderPad:
		return v.Center
	default:
		return geom.Point{}
	}
}

// WriteExcellonDrill writes every DrillHit in r as an Excellon drill
// file, one tool per distinct diameter. Grounded directly on
// original_source/src/drill.rs's header/tool-table/hit-list shape; the
// "want_plated" split in the original has no equivalent here since
// render.Rendered's DrillHit carries no plating distinction, so every
// hit goes into one file.
func WriteExcellonDrill(w io.Writer, r *render.Rendered) error {
	fmt.Fprint(w, "M48\n")
	fmt.Fprint(w, ";DRILL file {panelgo} date:\n")
	fmt.Fprint(w, ";FORMAT={-:-/ absolute / metric / decimal}\n")
	fmt.Fprint(w, "FMAT,2\n")
	fmt.Fprint(w, "METRIC,TZ\n")

	var drills []feature.DrillHit
	for _, sf := range r.SurfaceFeatures {
		if d, ok := sf.(feature.DrillHit); ok {
			drills = append(drills, d)
		}
	}

	toolOf := map[float64]int{}
	var diameters []float64
	for _, d := range drills {
		if _, ok := toolOf[d.Diameter]; !ok {
			toolOf[d.Diameter] = 0
			diameters = append(diameters, d.Diameter)
		}
	}
	sort.Float64s(diameters)
	for i, dia := range diameters {
		toolOf[dia] = i + 1
		fmt.Fprintf(w, "T%dC%.4f\n", i+1, dia)
	}
	fmt.Fprint(w, "%\n")
	fmt.Fprint(w, "G90\n")
	fmt.Fprint(w, "G05\n")

	currentTool := -1
	for _, d := range drills {
		tool := toolOf[d.Diameter]
		if tool != currentTool {
			fmt.Fprintf(w, "T%d\n", tool)
			currentTool = tool
		}
		fmt.Fprintf(w, "X%.4fY%.4f\n", d.Center.X, d.Center.Y)
	}

	fmt.Fprint(w, "T0\n")
	fmt.Fprint(w, "M30\n")
	return nil
}
