package models

import (
	"github.com/zodimo/go-bidi/skia/base"
	"github.com/zodimo/go-bidi/skia/enums"
)

type Scalar = base.Scalar
type Corner = enums.Corner
type RRectType = enums.RRectType
