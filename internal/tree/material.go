package tree

import "github.com/fernseed/treegen/internal/config"

// Default material colors, matching the original tool's brown trunk
// and green foliage.
var (
	defaultTrunkColor = [4]float32{0.55, 0.27, 0.07, 1}
	defaultLeafColor  = [4]float32{0.1, 0.6, 0.1, 1}
)

// BarkMaterial derives the trunk material from the bark config. A zero
// tint keeps the default brown.
func BarkMaterial(bark config.BarkConfig) Material {
	m := Material{Name: "Trunk", BaseColor: defaultTrunkColor, Roughness: 0.9}
	if bark.Tint != 0 {
		m.BaseColor = colorFromTint(bark.Tint)
	}
	return m
}

// LeafMaterial derives the foliage material from the leaves config.
func LeafMaterial(leaves config.LeavesConfig) Material {
	m := Material{Name: "Leaves", BaseColor: defaultLeafColor, Roughness: 0.8}
	if leaves.Tint != 0 {
		m.BaseColor = colorFromTint(leaves.Tint)
	}
	return m
}

// colorFromTint converts a 0xRRGGBB tint to a normalized RGBA color.
func colorFromTint(tint uint32) [4]float32 {
	return [4]float32{
		float32((tint>>16)&0xFF) / 255,
		float32((tint>>8)&0xFF) / 255,
		float32(tint&0xFF) / 255,
		1,
	}
}
