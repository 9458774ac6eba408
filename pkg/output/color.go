package output

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Intensity range a channel is clamped to before quantizing
var intensity = core.NewInterval(0.000, 0.999)

// linearToGamma applies gamma 2. Negative and NaN values map to 0.
func linearToGamma(linear float64) float64 {
	if !(linear > 0) {
		return 0
	}
	return math.Sqrt(linear)
}

// toByte converts a linear color channel to an 8-bit value in [0, 255]
func toByte(linear float64) uint8 {
	return uint8(int(256 * intensity.Clamp(linearToGamma(linear))))
}

// ToRGB8 converts a linear color to gamma-corrected 8-bit channels
func ToRGB8(color core.Vec3) (r, g, b uint8) {
	return toByte(color.X), toByte(color.Y), toByte(color.Z)
}
