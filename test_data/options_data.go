package testdata

import "github.com/jwaldner/approxbench/internal/pricing"

// OptionCount is the record count the benchmark table declares. The table's
// first slot held that count line rather than an option, so Options carries
// one record fewer.
const OptionCount = 40

// Options is the benchmark option table with DerivaGem reference values.
// Spot and strike are unscaled.
var Options = []pricing.OptionRecord{
	{Spot: 42.00, Strike: 40.00, Rate: 0.1000, Volatility: 0.20, Time: 0.50, Kind: pricing.Call, Reference: 4.759423036851750055},
	{Spot: 42.00, Strike: 40.00, Rate: 0.1000, Volatility: 0.20, Time: 0.50, Kind: pricing.Put, Reference: 0.808600016880314021},
	{Spot: 100.00, Strike: 100.00, Rate: 0.0500, Volatility: 0.15, Time: 1.00, Kind: pricing.Put, Reference: 3.714602051381290071},
	{Spot: 60.00, Strike: 65.00, Rate: 0.0800, Volatility: 0.30, Time: 0.25, Kind: pricing.Call, Reference: 2.133371966735750025},
	{Spot: 100.00, Strike: 90.00, Rate: 0.1000, Volatility: 0.10, Time: 0.10, Kind: pricing.Call, Reference: 10.895610714793999563},
	{Spot: 100.00, Strike: 90.00, Rate: 0.1000, Volatility: 0.10, Time: 0.50, Kind: pricing.Call, Reference: 14.421570828843300660},
	{Spot: 100.00, Strike: 90.00, Rate: 0.1000, Volatility: 0.10, Time: 1.00, Kind: pricing.Call, Reference: 18.630859120667498274},
	{Spot: 100.00, Strike: 100.00, Rate: 0.1000, Volatility: 0.10, Time: 0.10, Kind: pricing.Call, Reference: 1.814984118378420108},
	{Spot: 100.00, Strike: 100.00, Rate: 0.1000, Volatility: 0.10, Time: 0.50, Kind: pricing.Call, Reference: 5.850273604284979889},
	{Spot: 100.00, Strike: 100.00, Rate: 0.1000, Volatility: 0.10, Time: 1.00, Kind: pricing.Call, Reference: 10.308147243666800463},
	{Spot: 100.00, Strike: 110.00, Rate: 0.1000, Volatility: 0.10, Time: 0.10, Kind: pricing.Call, Reference: 0.003523074865584340},
	{Spot: 100.00, Strike: 110.00, Rate: 0.1000, Volatility: 0.10, Time: 0.50, Kind: pricing.Call, Reference: 1.140722843827409960},
	{Spot: 100.00, Strike: 110.00, Rate: 0.1000, Volatility: 0.10, Time: 1.00, Kind: pricing.Call, Reference: 4.216747020308850402},
	{Spot: 100.00, Strike: 90.00, Rate: 0.1000, Volatility: 0.25, Time: 0.10, Kind: pricing.Call, Reference: 11.135244618346700207},
	{Spot: 100.00, Strike: 90.00, Rate: 0.1000, Volatility: 0.25, Time: 0.50, Kind: pricing.Call, Reference: 16.092638844092299166},
	{Spot: 100.00, Strike: 90.00, Rate: 0.1000, Volatility: 0.25, Time: 1.00, Kind: pricing.Call, Reference: 21.163454658480098658},
	{Spot: 100.00, Strike: 100.00, Rate: 0.1000, Volatility: 0.25, Time: 0.10, Kind: pricing.Call, Reference: 3.659962660310000171},
	{Spot: 100.00, Strike: 100.00, Rate: 0.1000, Volatility: 0.25, Time: 0.50, Kind: pricing.Call, Reference: 9.582231441086729973},
	{Spot: 100.00, Strike: 100.00, Rate: 0.1000, Volatility: 0.25, Time: 1.00, Kind: pricing.Call, Reference: 14.975798441718900733},
	{Spot: 100.00, Strike: 110.00, Rate: 0.1000, Volatility: 0.25, Time: 0.10, Kind: pricing.Call, Reference: 0.589613262035412977},
	{Spot: 100.00, Strike: 110.00, Rate: 0.1000, Volatility: 0.25, Time: 0.50, Kind: pricing.Call, Reference: 5.123575416865319809},
	{Spot: 100.00, Strike: 110.00, Rate: 0.1000, Volatility: 0.25, Time: 1.00, Kind: pricing.Call, Reference: 10.160055944516599880},
	{Spot: 100.00, Strike: 90.00, Rate: 0.1000, Volatility: 0.50, Time: 0.10, Kind: pricing.Call, Reference: 12.919509619564699676},
	{Spot: 100.00, Strike: 90.00, Rate: 0.1000, Volatility: 0.50, Time: 0.50, Kind: pricing.Call, Reference: 21.438280655724401669},
	{Spot: 100.00, Strike: 90.00, Rate: 0.1000, Volatility: 0.50, Time: 1.00, Kind: pricing.Call, Reference: 28.643647264488201643},
	{Spot: 100.00, Strike: 100.00, Rate: 0.1000, Volatility: 0.50, Time: 0.10, Kind: pricing.Call, Reference: 6.779936664291260406},
	{Spot: 100.00, Strike: 100.00, Rate: 0.1000, Volatility: 0.50, Time: 0.50, Kind: pricing.Call, Reference: 16.263193147074300526},
	{Spot: 100.00, Strike: 100.00, Rate: 0.1000, Volatility: 0.50, Time: 1.00, Kind: pricing.Call, Reference: 23.926745214162700393},
	{Spot: 100.00, Strike: 110.00, Rate: 0.1000, Volatility: 0.50, Time: 0.10, Kind: pricing.Call, Reference: 3.061909566605539812},
	{Spot: 100.00, Strike: 110.00, Rate: 0.1000, Volatility: 0.50, Time: 0.50, Kind: pricing.Call, Reference: 12.155688815568700178},
	{Spot: 100.00, Strike: 110.00, Rate: 0.1000, Volatility: 0.50, Time: 1.00, Kind: pricing.Call, Reference: 19.929858372066298955},
	{Spot: 100.00, Strike: 90.00, Rate: 0.1000, Volatility: 0.10, Time: 0.10, Kind: pricing.Put, Reference: 0.000095752219082624},
	{Spot: 100.00, Strike: 90.00, Rate: 0.1000, Volatility: 0.10, Time: 0.50, Kind: pricing.Put, Reference: 0.032219033907538303},
	{Spot: 100.00, Strike: 90.00, Rate: 0.1000, Volatility: 0.10, Time: 1.00, Kind: pricing.Put, Reference: 0.066226743903883001},
	{Spot: 100.00, Strike: 100.00, Rate: 0.1000, Volatility: 0.10, Time: 0.10, Kind: pricing.Put, Reference: 0.819967493295226002},
	{Spot: 100.00, Strike: 100.00, Rate: 0.1000, Volatility: 0.10, Time: 0.50, Kind: pricing.Put, Reference: 0.973216054356396021},
	{Spot: 100.00, Strike: 100.00, Rate: 0.1000, Volatility: 0.10, Time: 1.00, Kind: pricing.Put, Reference: 0.791889047262799961},
	{Spot: 100.00, Strike: 110.00, Rate: 0.1000, Volatility: 0.10, Time: 0.10, Kind: pricing.Put, Reference: 8.909004787274069415},
	{Spot: 100.00, Strike: 110.00, Rate: 0.1000, Volatility: 0.10, Time: 0.50, Kind: pricing.Put, Reference: 5.775959538905960144},
}

// CopyOptions returns a copy of the table so callers cannot mutate the fixture.
func CopyOptions() []pricing.OptionRecord {
	out := make([]pricing.OptionRecord, len(Options))
	copy(out, Options)
	return out
}
