package core

import (
	"math"
	"testing"
)

func TestVec3_Normalize(t *testing.T) {
	tests := []struct {
		name   string
		vector Vec3
	}{
		{name: "Unit axis", vector: NewVec3(1, 0, 0)},
		{name: "Long diagonal", vector: NewVec3(3, -4, 12)},
		{name: "Small components", vector: NewVec3(1e-3, 2e-3, -5e-4)},
		{name: "Negative components", vector: NewVec3(-7, -2, -9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const tolerance = 1e-12
			length := tt.vector.Normalize().Length()
			if math.Abs(length-1) > tolerance {
				t.Errorf("Expected unit length, got %v", length)
			}
		})
	}
}

func TestVec3_NormalizeZero(t *testing.T) {
	result := NewVec3(0, 0, 0).Normalize()
	if !result.Equals(NewVec3(0, 0, 0)) {
		t.Errorf("Expected zero vector, got %v", result)
	}
}

func TestVec3_CrossOrthogonality(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3
	}{
		{name: "Axis vectors", a: NewVec3(1, 0, 0), b: NewVec3(0, 1, 0)},
		{name: "Skew vectors", a: NewVec3(1, 2, 3), b: NewVec3(-4, 5, 0.5)},
		{name: "Near parallel", a: NewVec3(1, 0, 0), b: NewVec3(1, 1e-4, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const tolerance = 1e-12
			cross := tt.a.Cross(tt.b)
			if math.Abs(cross.Dot(tt.a)) > tolerance {
				t.Errorf("Cross product not orthogonal to a: dot = %v", cross.Dot(tt.a))
			}
			if math.Abs(cross.Dot(tt.b)) > tolerance {
				t.Errorf("Cross product not orthogonal to b: dot = %v", cross.Dot(tt.b))
			}
		})
	}
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	if got := a.Add(b); !got.Equals(NewVec3(5, -3, 9)) {
		t.Errorf("Add: expected (5,-3,9), got %v", got)
	}
	if got := a.Subtract(b); !got.Equals(NewVec3(-3, 7, -3)) {
		t.Errorf("Subtract: expected (-3,7,-3), got %v", got)
	}
	if got := a.Multiply(2); !got.Equals(NewVec3(2, 4, 6)) {
		t.Errorf("Multiply: expected (2,4,6), got %v", got)
	}
	if got := a.Dot(b); got != 12 {
		t.Errorf("Dot: expected 12, got %v", got)
	}
	if got := a.Negate(); !got.Equals(NewVec3(-1, -2, -3)) {
		t.Errorf("Negate: expected (-1,-2,-3), got %v", got)
	}
	if got := NewVec3(3, 4, 0).Length(); got != 5 {
		t.Errorf("Length: expected 5, got %v", got)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 0, 0), NewVec3(0, 2, 0))
	if got := ray.At(1.5); !got.Equals(NewVec3(1, 3, 0)) {
		t.Errorf("Expected (1,3,0), got %v", got)
	}
}
