package setouchi

type TimetableRow struct {
	DeparturePort  string `csv:"出发地"`
	ArrivalPort    string `csv:"到达地"`
	DepartureTime  string `csv:"出发时间"`
	ArrivalTime    string `csv:"到达时间"`
	Company        string `csv:"运营公司"`
	ShipType       string `csv:"船只类型"`
	AllowsVehicles string `csv:"允许车辆"`
	AllowsBicycles string `csv:"允许自行车"`
	AdultFare      string `csv:"大人票价"`
	ChildFare      string `csv:"小人票价"`
	OperatingDays  string `csv:"运营日期"`
	Notes          string `csv:"备注"`
}

type CompanyRow struct {
	Name  string `csv:"公司名称"`
	Phone string `csv:"联系电话"`

	// Older exports use the short column name
	Website      string `csv:"官方网站"`
	WebsiteShort string `csv:"网站"`

	MainRoutes string `csv:"主要航线"`
	Notes      string `csv:"备注"`
}

type PortRow struct {
	Name        string `csv:"港口名称"`
	Island      string `csv:"所在岛屿"`
	Address     string `csv:"地址"`
	Features    string `csv:"特点"`
	Connections string `csv:"连接岛屿"`
}

type FareRow struct {
	DeparturePort string `csv:"出发地"`
	ArrivalPort   string `csv:"到达地"`
	Company       string `csv:"运营公司"`
	AdultFare     string `csv:"大人票价"`
	ChildFare     string `csv:"小人票价"`
	Notes         string `csv:"备注"`
}

// Island transport files are English headed. Some islands were exported with
// different names for the same column, so each alternative gets its own field.
type BicycleRentalRow struct {
	ShopName    string `csv:"shop_name"`
	Location    string `csv:"location"`
	BicycleType string `csv:"bicycle_type"`

	PriceOneDay    string `csv:"price_1day_yen"`
	PricePerDay    string `csv:"price_per_day_yen"`
	PriceDay       string `csv:"price_day_yen"`
	PriceFourHours string `csv:"price_4hours_yen"`
	PriceOvernight string `csv:"price_overnight_yen"`

	OperatingHours string `csv:"operating_hours"`
	Contact        string `csv:"contact"`
	Notes          string `csv:"notes"`
	Equipment      string `csv:"equipment"`
	Insurance      string `csv:"insurance"`
}

type BusTimetableRow struct {
	BusType       string `csv:"bus_type"`
	BusLine       string `csv:"bus_line"`
	TransportType string `csv:"transport_type"`

	Route         string `csv:"route"`
	DepartureStop string `csv:"departure_stop"`
	ArrivalStop   string `csv:"arrival_stop"`
	DepartureTime string `csv:"departure_time"`
	ArrivalTime   string `csv:"arrival_time"`

	AdultFare     string `csv:"fare_adult_yen"`
	AdultFareOnly string `csv:"fare_yen"`
	ChildFare     string `csv:"fare_child_yen"`

	Operator  string `csv:"operator"`
	Notes     string `csv:"notes"`
	Frequency string `csv:"frequency"`
}

type OtherTransportRow struct {
	TransportType  string `csv:"transport_type"`
	ServiceName    string `csv:"service_name"`
	Location       string `csv:"location"`
	Price          string `csv:"price_yen"`
	OperatingHours string `csv:"operating_hours"`
	Contact        string `csv:"contact"`
	Notes          string `csv:"notes"`
	Capacity       string `csv:"capacity"`
	Requirements   string `csv:"requirements"`
}
