// README: MRT Blue Line station gazetteer; pure data plus text/coordinate lookup.
package station

import (
	"strings"

	"mrtbot/internal/types"
)

// Station is one MRT Blue Line stop.
type Station struct {
	Name     string
	Position types.Point
}

// stations lists the Blue Line stops in line order. Order matters: Find
// returns the first name contained in the text, like the source data set.
var stations = []Station{
	{"หัวลำโพง", types.Point{Lat: 13.739186, Lng: 100.516893}},
	{"สามย่าน", types.Point{Lat: 13.732952, Lng: 100.529431}},
	{"สีลม", types.Point{Lat: 13.729908, Lng: 100.535898}},
	{"ลุมพินี", types.Point{Lat: 13.729172, Lng: 100.546305}},
	{"คลองเตย", types.Point{Lat: 13.723912, Lng: 100.556276}},
	{"ศูนย์การประชุมแห่งชาติสิริกิติ์", types.Point{Lat: 13.722881, Lng: 100.561587}},
	{"สุขุมวิท", types.Point{Lat: 13.738012, Lng: 100.561081}},
	{"เพชรบุรี", types.Point{Lat: 13.750873, Lng: 100.561919}},
	{"พระราม 9", types.Point{Lat: 13.758031, Lng: 100.565439}},
	{"ศูนย์วัฒนธรรมแห่งประเทศไทย", types.Point{Lat: 13.765664, Lng: 100.569106}},
	{"ห้วยขวาง", types.Point{Lat: 13.778844, Lng: 100.574633}},
	{"สุทธิสาร", types.Point{Lat: 13.789233, Lng: 100.574784}},
	{"รัชดาภิเษก", types.Point{Lat: 13.797274, Lng: 100.575647}},
	{"ลาดพร้าว", types.Point{Lat: 13.806659, Lng: 100.576899}},
	{"พหลโยธิน", types.Point{Lat: 13.815779, Lng: 100.562144}},
	{"สวนจตุจักร", types.Point{Lat: 13.822295, Lng: 100.552278}},
	{"กำแพงเพชร", types.Point{Lat: 13.824706, Lng: 100.548481}},
	{"บางซื่อ", types.Point{Lat: 13.803362, Lng: 100.535032}},
	{"เตาปูน", types.Point{Lat: 13.806306, Lng: 100.529450}},
	{"บางโพ", types.Point{Lat: 13.811808, Lng: 100.521833}},
	{"บางอ้อ", types.Point{Lat: 13.805565, Lng: 100.512686}},
	{"บางพลัด", types.Point{Lat: 13.790588, Lng: 100.506541}},
	{"สิรินธร", types.Point{Lat: 13.782017, Lng: 100.493922}},
	{"บางยี่ขัน", types.Point{Lat: 13.771146, Lng: 100.488390}},
	{"บางขุนนนท์", types.Point{Lat: 13.764491, Lng: 100.477085}},
	{"ไฟฉาย", types.Point{Lat: 13.757352, Lng: 100.469033}},
	{"จรัญฯ 13", types.Point{Lat: 13.751325, Lng: 100.470724}},
	{"ท่าพระ", types.Point{Lat: 13.743015, Lng: 100.472280}},
	{"บางไผ่", types.Point{Lat: 13.734685, Lng: 100.468841}},
	{"บางหว้า", types.Point{Lat: 13.723824, Lng: 100.460144}},
	{"เพชรเกษม 48", types.Point{Lat: 13.722686, Lng: 100.444747}},
	{"ภาษีเจริญ", types.Point{Lat: 13.719601, Lng: 100.434440}},
	{"บางแค", types.Point{Lat: 13.715367, Lng: 100.418041}},
	{"หลักสอง", types.Point{Lat: 13.710784, Lng: 100.406103}},
	{"วัดมังกร", types.Point{Lat: 13.743734, Lng: 100.509747}},
	{"สามยอด", types.Point{Lat: 13.747199, Lng: 100.503276}},
	{"สนามไชย", types.Point{Lat: 13.743384, Lng: 100.495048}},
	{"อิสรภาพ", types.Point{Lat: 13.747444, Lng: 100.485233}},
}

// All returns the gazetteer in line order.
func All() []Station {
	out := make([]Station, len(stations))
	copy(out, stations)
	return out
}

// ByName looks up a station by its exact gazetteer name.
func ByName(name string) (Station, bool) {
	for _, st := range stations {
		if st.Name == name {
			return st, true
		}
	}
	return Station{}, false
}

// Find scans text for the first station name it contains and returns the
// station plus the remaining text with the station name stripped, trimmed.
func Find(text string) (Station, string, bool) {
	for _, st := range stations {
		if strings.Contains(text, st.Name) {
			keyword := strings.TrimSpace(strings.Replace(text, st.Name, "", 1))
			return st, keyword, true
		}
	}
	return Station{}, "", false
}
