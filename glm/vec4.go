package glm

type Vec4[T numeric] [4]T

// XY drops the z and w components.
func (lhs Vec4[T]) XY() Vec2[T] {
	return Vec2[T]{lhs[0], lhs[1]}
}
