package entity

import "testing"

func BenchmarkCharacterUpdate_Idle(b *testing.B) {
	c, clk := createTestCharacter()

	for n := 0; n < b.N; n++ {
		clk.now += 16
		c.Update()
	}
}

func BenchmarkCharacterUpdate_MovingAndFiring(b *testing.B) {
	c, clk := createTestCharacter()
	c.MouseMove(400, 0)
	c.KeyDown("d")
	c.KeyDown("f")

	for n := 0; n < b.N; n++ {
		clk.now += 16
		c.Update()
		for c.AnyBullets() {
			c.NextBullet()
		}
	}
}
