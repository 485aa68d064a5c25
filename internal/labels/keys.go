package labels

// Key names one piece of display text.
type Key string

const (
	AppTitle              Key = "app_title"
	StatefulConverter     Key = "stateful_converter"
	HoistedConverter      Key = "hoisted_converter"
	TwoWayConverter       Key = "two_way_converter"
	EnterCelsius          Key = "enter_celsius"
	TemperatureFahrenheit Key = "temperature_fahrenheit" // %s: converted text
	EnterTemperature      Key = "enter_temperature"      // %s: scale name
	ScaleCelsius          Key = "scale_celsius"
	ScaleFahrenheit       Key = "scale_fahrenheit"

	HelpNext   Key = "help_next"
	HelpPrev   Key = "help_prev"
	HelpToggle Key = "help_toggle"
	HelpQuit   Key = "help_quit"
	HelpBody   Key = "help_body" // markdown
)

// DefaultLocale is used when nothing better matches.
const DefaultLocale = "en"

var builtin = Tables{
	"en": {
		AppTitle:              "Temperature Converter",
		StatefulConverter:     "Stateful Converter",
		HoistedConverter:      "Converter (hoisted state)",
		TwoWayConverter:       "Two-Way Converter",
		EnterCelsius:          "Enter Celsius",
		TemperatureFahrenheit: "Temperature in Fahrenheit: %s",
		EnterTemperature:      "Enter temperature in %s",
		ScaleCelsius:          "Celsius",
		ScaleFahrenheit:       "Fahrenheit",
		HelpNext:              "next field",
		HelpPrev:              "previous field",
		HelpToggle:            "help",
		HelpQuit:              "quit",
		HelpBody: `# Temperature Converter

Type a number into any field. The converted value updates on every keystroke.

- **Stateful converter** keeps its own text.
- **Hoisted converter** shows the same screen with the text owned by the app.
- **Two-way converter** keeps Celsius and Fahrenheit in sync in both directions.

Anything that is not a decimal number shows ` + "`Invalid Input`" + `.

Press ` + "`?`" + ` to close this help.
`,
	},
	"id": {
		AppTitle:              "Konversi Suhu",
		StatefulConverter:     "Konverter dengan State",
		HoistedConverter:      "Konverter (state diangkat)",
		TwoWayConverter:       "Konverter Dua Arah",
		EnterCelsius:          "Masukkan Celsius",
		TemperatureFahrenheit: "Suhu dalam Fahrenheit: %s",
		EnterTemperature:      "Masukkan suhu dalam %s",
		ScaleCelsius:          "Celsius",
		ScaleFahrenheit:       "Fahrenheit",
		HelpNext:              "kolom berikutnya",
		HelpPrev:              "kolom sebelumnya",
		HelpToggle:            "bantuan",
		HelpQuit:              "keluar",
		HelpBody: `# Konversi Suhu

Ketik angka di kolom mana pun. Hasil konversi diperbarui setiap ketikan.

- **Konverter dengan state** menyimpan teksnya sendiri.
- **Konverter (state diangkat)** menampilkan layar yang sama, teksnya disimpan oleh aplikasi.
- **Konverter dua arah** menyelaraskan Celsius dan Fahrenheit ke dua arah.

Masukan yang bukan angka desimal menampilkan ` + "`Invalid Input`" + `.

Tekan ` + "`?`" + ` untuk menutup bantuan ini.
`,
	},
}
