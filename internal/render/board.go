package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"
	"sync"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
)

const DefaultSize = 96

var ErrInvalidSize = errors.New("invalid image size")

const (
	backgroundColor = "#ffffff"
	gridColor       = "#444444"
	firstColor      = "#d33f49"
	secondColor     = "#2f6fb5"
)

// BoardRenderer draws a board snapshot as a PNG thumbnail.
type BoardRenderer interface {
	RenderPNG(ctx context.Context, owners [entity.BoardCells]entity.Slot) ([]byte, error)
}

type svgBoardRenderer struct {
	size int

	mu    sync.RWMutex
	cache map[[entity.BoardCells]entity.Slot][]byte
}

// NewSVGBoardRenderer draws a cross for player 1 and a circle for player 2
// on a size x size image. Rendered images are cached per board.
func NewSVGBoardRenderer(size int) (BoardRenderer, error) {
	if size < 3*entity.BoardCells {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	return &svgBoardRenderer{
		size:  size,
		cache: make(map[[entity.BoardCells]entity.Slot][]byte),
	}, nil
}

func (that *svgBoardRenderer) RenderPNG(ctx context.Context, owners [entity.BoardCells]entity.Slot) ([]byte, error) {
	that.mu.RLock()
	if data, ok := that.cache[owners]; ok {
		that.mu.RUnlock()
		return data, nil
	}
	that.mu.RUnlock()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	icon, err := oksvg.ReadIconStream(strings.NewReader(boardSVG(owners)))
	if err != nil {
		return nil, fmt.Errorf("parse board svg: %w", err)
	}

	size := that.size
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Transparent), image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	var pngBuf bytes.Buffer
	if err = png.Encode(&pngBuf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}

	data := pngBuf.Bytes()

	that.mu.Lock()
	that.cache[owners] = data
	that.mu.Unlock()

	return data, nil
}

// boardSVG lays the board out on a 90x90 view box, 30 units per cell.
func boardSVG(owners [entity.BoardCells]entity.Slot) string {
	const (
		cell   = 30
		pad    = 7
		stroke = 4
	)

	var sb strings.Builder

	sb.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" width="90" height="90" viewBox="0 0 90 90">`)
	fmt.Fprintf(&sb, `<rect x="0" y="0" width="90" height="90" fill="%s"/>`, backgroundColor)

	for i := 1; i < 3; i++ {
		fmt.Fprintf(&sb, `<line x1="%d" y1="0" x2="%d" y2="90" stroke="%s" stroke-width="2"/>`, i*cell, i*cell, gridColor)
		fmt.Fprintf(&sb, `<line x1="0" y1="%d" x2="90" y2="%d" stroke="%s" stroke-width="2"/>`, i*cell, i*cell, gridColor)
	}

	for index, owner := range owners {
		x := (index % 3) * cell
		y := (index / 3) * cell

		switch owner {
		case entity.FirstSlot:
			fmt.Fprintf(&sb, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="%d"/>`,
				x+pad, y+pad, x+cell-pad, y+cell-pad, firstColor, stroke)
			fmt.Fprintf(&sb, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="%d"/>`,
				x+cell-pad, y+pad, x+pad, y+cell-pad, firstColor, stroke)
		case entity.SecondSlot:
			fmt.Fprintf(&sb, `<circle cx="%d" cy="%d" r="%d" fill="none" stroke="%s" stroke-width="%d"/>`,
				x+cell/2, y+cell/2, cell/2-pad, secondColor, stroke)
		}
	}

	sb.WriteString(`</svg>`)

	return sb.String()
}
