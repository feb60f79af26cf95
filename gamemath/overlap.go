package gamemath

// Overlap1D reports whether the half-open intervals [a, a+aw) and [b, b+bw) intersect.
func Overlap1D(a, aw, b, bw float64) bool {
	return a < b+bw && b < a+aw
}

// Overlaps reports strict AABB intersection.
func Overlaps(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return Overlap1D(ax, aw, bx, bw) && Overlap1D(ay, ah, by, bh)
}

// LandingAligned is the geometric half of the platform landing test: the
// horizontal spans overlap and the bottom edge sits within tolerance of the
// top surface, allowing travel extra pixels of penetration from this step's motion.
func LandingAligned(x, w, bottom, px, pw, top, tolerance, travel float64) bool {
	if !Overlap1D(x, w, px, pw) {
		return false
	}
	return bottom >= top-tolerance && bottom <= top+tolerance+travel
}
