package geo

import "math"

// earthRadiusMeters 平均地球半径
const earthRadiusMeters = 6371000.0

// Coordinate 一个 WGS84 坐标点。
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Fence 项目配置的圆形地理围栏。
type Fence struct {
	Center       Coordinate
	RadiusMeters float64
}

// Distance 计算两点间的大圆距离（haversine），单位米。
func Distance(a, b Coordinate) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// IsOutside 判断坐标是否落在围栏之外。
// 围栏未配置或没有采集到坐标时一律视为未越界，缺数据不当违规处理。
func IsOutside(fence *Fence, point *Coordinate) bool {
	if fence == nil || point == nil {
		return false
	}

	return Distance(fence.Center, *point) > fence.RadiusMeters
}
