package palette

// flossColors is a curated subset of the DMC six-strand cotton range,
// covering the hue wheel plus the neutral ramp. Codes and hex values follow
// the commonly published conversion charts.
var flossColors = []Entry{
	{Code: "B5200", Name: "Snow White", Hex: "#ffffff"},
	{Code: "Ecru", Name: "Ecru", Hex: "#f0eada"},
	{Code: "712", Name: "Cream", Hex: "#fffbef"},
	{Code: "310", Name: "Black", Hex: "#000000"},
	{Code: "3371", Name: "Black Brown", Hex: "#1e1108"},
	{Code: "762", Name: "Very Light Pearl Gray", Hex: "#ececec"},
	{Code: "415", Name: "Pearl Gray", Hex: "#d3d3d6"},
	{Code: "318", Name: "Light Steel Gray", Hex: "#ababab"},
	{Code: "414", Name: "Dark Steel Gray", Hex: "#8c8c8c"},
	{Code: "317", Name: "Pewter Gray", Hex: "#6c6c6c"},
	{Code: "413", Name: "Dark Pewter Gray", Hex: "#565656"},
	{Code: "3799", Name: "Very Dark Pewter Gray", Hex: "#424242"},

	{Code: "321", Name: "Red", Hex: "#c72b3b"},
	{Code: "666", Name: "Bright Red", Hex: "#e31d42"},
	{Code: "498", Name: "Dark Red", Hex: "#a7132b"},
	{Code: "816", Name: "Garnet", Hex: "#970b23"},
	{Code: "815", Name: "Medium Garnet", Hex: "#87071f"},
	{Code: "814", Name: "Dark Garnet", Hex: "#7b001b"},
	{Code: "606", Name: "Bright Orange-Red", Hex: "#fa3203"},
	{Code: "608", Name: "Bright Orange", Hex: "#fd5d35"},
	{Code: "946", Name: "Medium Burnt Orange", Hex: "#eb6307"},
	{Code: "900", Name: "Dark Burnt Orange", Hex: "#d15807"},
	{Code: "740", Name: "Tangerine", Hex: "#ff8b00"},
	{Code: "971", Name: "Pumpkin", Hex: "#f67f00"},
	{Code: "970", Name: "Light Pumpkin", Hex: "#f78b13"},

	{Code: "307", Name: "Lemon", Hex: "#fded54"},
	{Code: "444", Name: "Dark Lemon", Hex: "#ffd600"},
	{Code: "973", Name: "Bright Canary", Hex: "#ffe300"},
	{Code: "972", Name: "Deep Canary", Hex: "#ffb515"},

	{Code: "704", Name: "Bright Chartreuse", Hex: "#9ecf34"},
	{Code: "703", Name: "Chartreuse", Hex: "#7bb547"},
	{Code: "702", Name: "Kelly Green", Hex: "#47a72f"},
	{Code: "701", Name: "Light Green", Hex: "#3f8f29"},
	{Code: "700", Name: "Bright Green", Hex: "#07731b"},
	{Code: "699", Name: "Green", Hex: "#056517"},
	{Code: "895", Name: "Very Dark Hunter Green", Hex: "#1b5300"},
	{Code: "986", Name: "Very Dark Forest Green", Hex: "#405230"},
	{Code: "989", Name: "Forest Green", Hex: "#8da665"},

	{Code: "3843", Name: "Electric Blue", Hex: "#14aad0"},
	{Code: "996", Name: "Medium Electric Blue", Hex: "#30c2ec"},
	{Code: "995", Name: "Dark Electric Blue", Hex: "#2696b6"},
	{Code: "800", Name: "Pale Delft Blue", Hex: "#c0ccde"},
	{Code: "799", Name: "Medium Delft Blue", Hex: "#748eb6"},
	{Code: "798", Name: "Dark Delft Blue", Hex: "#466a8e"},
	{Code: "797", Name: "Royal Blue", Hex: "#13477d"},
	{Code: "796", Name: "Dark Royal Blue", Hex: "#11416d"},
	{Code: "820", Name: "Very Dark Royal Blue", Hex: "#0e365c"},

	{Code: "211", Name: "Light Lavender", Hex: "#e3cbe3"},
	{Code: "210", Name: "Medium Lavender", Hex: "#c39fc3"},
	{Code: "209", Name: "Dark Lavender", Hex: "#a37ba7"},
	{Code: "208", Name: "Very Dark Lavender", Hex: "#835b8b"},
	{Code: "554", Name: "Light Violet", Hex: "#dbb3cb"},
	{Code: "552", Name: "Medium Violet", Hex: "#803a6b"},
	{Code: "550", Name: "Very Dark Violet", Hex: "#5c184e"},
	{Code: "915", Name: "Dark Plum", Hex: "#820043"},
	{Code: "917", Name: "Medium Plum", Hex: "#9b1359"},
	{Code: "718", Name: "Plum", Hex: "#9c2462"},

	{Code: "605", Name: "Very Light Cranberry", Hex: "#ffc0cd"},
	{Code: "603", Name: "Cranberry", Hex: "#ffa4be"},
	{Code: "602", Name: "Medium Cranberry", Hex: "#e24874"},
	{Code: "600", Name: "Very Dark Cranberry", Hex: "#cd2f63"},
	{Code: "957", Name: "Pale Geranium", Hex: "#fdb5b5"},
	{Code: "956", Name: "Geranium", Hex: "#ff9191"},

	{Code: "739", Name: "Ultra Very Light Tan", Hex: "#f8e4c8"},
	{Code: "738", Name: "Very Light Tan", Hex: "#eccc9e"},
	{Code: "436", Name: "Tan", Hex: "#cb9051"},
	{Code: "435", Name: "Very Light Brown", Hex: "#b87748"},
	{Code: "433", Name: "Medium Brown", Hex: "#7a451f"},
	{Code: "801", Name: "Dark Coffee Brown", Hex: "#653919"},
	{Code: "898", Name: "Very Dark Coffee Brown", Hex: "#492a13"},
	{Code: "938", Name: "Ultra Dark Coffee Brown", Hex: "#361f0e"},
}
