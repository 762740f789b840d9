package model

import "WorkTrail/pkg/geo"

// Project 项目（工地）。CRUD 由中台维护，本服务只读。
// 三个 geo 字段都配置了才算有地理围栏。
type Project struct {
	BaseModel
	CompanyID int64  `gorm:"not null;index" json:"company_id"`
	Name      string `gorm:"type:varchar(255);not null" json:"name"`
	Address   string `gorm:"type:varchar(255)" json:"address"`

	GeoLatitude     *float64 `json:"geo_latitude,omitempty"`
	GeoLongitude    *float64 `json:"geo_longitude,omitempty"`
	GeoRadiusMeters *int     `json:"geo_radius_meters,omitempty"`
}

// TableName 指定表名
func (Project) TableName() string {
	return "projects"
}

// Geofence 返回项目围栏，未配置完整返回 nil。
func (p *Project) Geofence() *geo.Fence {
	if p.GeoLatitude == nil || p.GeoLongitude == nil || p.GeoRadiusMeters == nil {
		return nil
	}

	return &geo.Fence{
		Center: geo.Coordinate{
			Latitude:  *p.GeoLatitude,
			Longitude: *p.GeoLongitude,
		},
		RadiusMeters: float64(*p.GeoRadiusMeters),
	}
}
