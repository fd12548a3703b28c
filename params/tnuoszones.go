/*
Copyright © 2025 the SiteRank authors.
This file is part of SiteRank.

SiteRank is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

SiteRank is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with SiteRank.  If not, see <http://www.gnu.org/licenses/>.
*/

package params

// TNUoSZone is one generation charging zone approximated by an
// axis-aligned lat/lon bounding box. Tariffs are £/kW per year.
type TNUoSZone struct {
	ID     int
	Name   string
	Tariff float64

	MinLat, MaxLat float64
	MinLon, MaxLon float64
}

// TNUoSZones approximates the GB generation charging zones. Lookup is
// first-match in declaration order, so more specific boxes come before
// the broad ones they overlap. Tariffs fall roughly north to south.
var TNUoSZones = []TNUoSZone{
	{1, "North West Scotland", 15.49, 57.5, 60.9, -8.0, -4.5},
	{2, "North Scotland", 15.27, 57.5, 60.9, -4.5, -0.5},
	{3, "Western Highlands", 14.62, 56.8, 57.5, -6.8, -4.6},
	{4, "Skye and Lochalsh", 14.11, 57.0, 57.6, -7.2, -5.6},
	{5, "Eastern Grampian and Tayside", 13.50, 56.8, 57.7, -3.4, -1.6},
	{6, "Central Grampian", 13.05, 56.8, 57.5, -4.6, -3.4},
	{7, "Argyll", 12.48, 55.8, 56.8, -6.4, -4.8},
	{8, "The Trossachs", 11.90, 56.0, 56.8, -4.8, -3.8},
	{9, "Stirlingshire and Fife", 11.22, 56.0, 56.8, -3.8, -2.4},
	{10, "South West Scotland", 10.60, 54.8, 55.8, -5.2, -3.6},
	{11, "Lothian and Borders", 9.84, 55.3, 56.0, -3.6, -2.0},
	{12, "Solway and Cheviot", 9.10, 54.8, 55.6, -3.6, -1.8},
	{13, "North East England", 8.23, 54.4, 55.4, -2.4, -0.8},
	{14, "North Lancashire and The Lakes", 7.56, 53.9, 54.8, -3.4, -2.2},
	{15, "South Lancashire, Yorkshire and Humber", 6.77, 53.3, 54.1, -3.0, 0.2},
	{16, "Anglesey and Snowdon", 5.95, 52.9, 53.5, -5.0, -3.8},
	{17, "North Midlands and North Wales", 5.81, 52.7, 53.4, -3.8, -0.4},
	{18, "South Lincolnshire and North Norfolk", 4.92, 52.6, 53.3, -0.4, 1.8},
	{19, "Mid Wales and The Midlands", 4.15, 52.1, 52.8, -4.0, -0.9},
	{20, "Pembrokeshire", 2.90, 51.5, 52.2, -5.4, -4.0},
	{21, "South Wales and Gloucester", 2.35, 51.3, 51.9, -4.0, -2.6},
	{22, "Cotswold", 1.77, 51.5, 52.2, -2.6, -0.9},
	{23, "Central London", 1.10, 51.3, 51.7, -0.6, 0.3},
	{24, "Essex and Kent", 0.42, 50.9, 51.8, 0.3, 1.8},
	{25, "Oxfordshire, Surrey and Sussex", -0.20, 50.7, 51.5, -1.6, 0.3},
	{26, "Somerset and Wessex", -1.05, 50.5, 51.5, -3.2, -1.6},
	{27, "West Devon and Cornwall", -2.27, 49.9, 50.9, -5.8, -3.2},
}
