package ui

import "image/color"

var (
	colBG       = color.RGBA{24, 24, 32, 255}
	colBoard    = color.RGBA{34, 34, 46, 255}
	colGridLine = color.RGBA{60, 60, 72, 255}

	colRope     = color.RGBA{235, 170, 60, 255}
	colRopeDot  = color.RGBA{245, 190, 90, 255}
	colSolution = color.RGBA{70, 130, 200, 160}

	colHint     = color.RGBA{200, 200, 210, 255}
	colHintDone = color.RGBA{90, 210, 120, 255}

	colWinTint = color.RGBA{40, 160, 80, 70}
	colText    = color.RGBA{230, 230, 235, 255}
)
