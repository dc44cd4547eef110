package glm

type Vec2[T numeric] [2]T

func (lhs Vec2[T]) Add(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{
		lhs[0] + rhs[0],
		lhs[1] + rhs[1],
	}
}

func (lhs Vec2[T]) Sub(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{
		lhs[0] - rhs[0],
		lhs[1] - rhs[1],
	}
}

func (lhs Vec2[T]) MulScalar(s T) Vec2[T] {
	return Vec2[T]{
		lhs[0] * s,
		lhs[1] * s,
	}
}

func (lhs Vec2[T]) XY() (x, y T) {
	x = lhs[0]
	y = lhs[1]
	return
}

func (lhs Vec2[T]) ToVec2f() Vec2f {
	return Vec2f{float32(lhs[0]), float32(lhs[1])}
}

// NDCToPixel maps a point in normalized device coordinates to the pixel
// that covers it on a target of the given size. The y axis is flipped, as
// NDC y points up while pixel rows count downwards. The result is clamped
// to the target.
func NDCToPixel(ndc Vec2f, size Vec2u) Vec2u {
	w, h := size.ToVec2f().XY()

	x := (ndc[0] + 1) / 2 * w
	y := (1 - ndc[1]) / 2 * h

	return Vec2u{
		clampPixel(x, size[0]),
		clampPixel(y, size[1]),
	}
}

func clampPixel(value float32, size uint32) uint32 {
	if value <= 0 || size == 0 {
		return 0
	}

	if value >= float32(size) {
		return size - 1
	}

	return uint32(value)
}
