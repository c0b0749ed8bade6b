package roots

import "github.com/agbru/polyroots/internal/complexnum"

// solveQuadratic solves c2·x² + c1·x + c0 = 0 from the sign of the
// discriminant. A zero discriminant (exact comparison) yields a single
// repeated root; otherwise two roots are returned, the "+" branch first.
func solveQuadratic(c []float64) ([]complexnum.Complex, error) {
	if len(c) != 3 {
		return nil, wrongLength(Quadratic, len(c))
	}
	c0, c1, c2 := c[0], c[1], c[2]
	if c2 == 0 {
		return nil, &PreconditionError{Strategy: Quadratic, Reason: "leading coefficient is zero"}
	}

	discriminant := c1*c1 - 4*c2*c0
	realPart := -c1 / (2 * c2)
	sqrtDisc := complexnum.RealSqrt(discriminant)

	switch {
	case discriminant < 0:
		imagPart := sqrtDisc.Im() / (2 * c2)
		return []complexnum.Complex{
			complexnum.New(realPart, imagPart),
			complexnum.New(realPart, -imagPart),
		}, nil
	case discriminant == 0:
		return []complexnum.Complex{complexnum.Real(realPart)}, nil
	default:
		rootPart := sqrtDisc.Re() / (2 * c2)
		return []complexnum.Complex{
			complexnum.Real(realPart + rootPart),
			complexnum.Real(realPart - rootPart),
		}, nil
	}
}
