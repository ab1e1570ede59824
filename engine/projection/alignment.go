package projection

import (
	"fmt"
	"math"

	"github.com/1siamBot/surrender/engine/geom"
)

// AlignmentMatrix builds the rotation that takes world directions into the
// window frame: normal onto +Z and up onto +Y. Each step rotates the values
// produced by the previous one; the inputs are not modified.
func AlignmentMatrix(up, normal geom.Vec3) (geom.Mat3, error) {
	if up.IsZero() || normal.IsZero() {
		return geom.Mat3{}, fmt.Errorf("alignment of up=%v normal=%v: zero-length vector: %w",
			up, normal, geom.ErrDegenerate)
	}
	if up.Normalize().Cross(normal.Normalize()).IsZero() {
		return geom.Mat3{}, fmt.Errorf("alignment of up=%v normal=%v: vectors are parallel: %w",
			up, normal, geom.ErrDegenerate)
	}

	rx := normal.XAngle()
	normal = normal.RotateX(rx)
	up = up.RotateX(rx)

	ry := normal.YAngle() - math.Pi/2
	normal = normal.RotateY(ry)
	up = up.RotateY(ry)

	rz := up.ZAngle()

	return geom.RotationX(rx).Mul(geom.RotationY(ry)).Mul(geom.RotationZ(rz)), nil
}
