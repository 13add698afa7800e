package impl

import (
	"github.com/zodimo/go-bidi/skia/base"
	"github.com/zodimo/go-bidi/skia/models"
)

type Scalar = base.Scalar

type Point = models.Point

type Color4f = models.Color4f

type Rect = models.Rect

type RSXform = models.RSXform
