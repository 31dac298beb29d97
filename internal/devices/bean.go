package devices

// onOff is the ubiquitous two-state enum map.
var onOff = map[string]string{"0": "Off", "1": "On"}

// beanSchema is the generic attribute set shared by the standard air
// conditioner types (split, window, portable, boiler). Concrete devices
// narrow it with FilterByProperties once their property list is known.
func beanSchema(typeCode, featureCode, name string) *Schema {
	return &Schema{
		TypeCode:    typeCode,
		FeatureCode: featureCode,
		Name:        name,
		Attributes: map[string]Attribute{
			"t_power": {
				Key: "t_power", Name: "Power", Type: TypeEnum, Step: 1,
				ValueRange: "0,1", ValueMap: onOff, ReadWrite: "RW",
			},
			"t_work_mode": {
				Key: "t_work_mode", Name: "Mode", Type: TypeEnum, Step: 1,
				ValueRange: "0,1,2,3,4,5",
				ValueMap: map[string]string{
					"0": "Fan", "1": "Heat", "2": "Cool", "3": "Dry",
					"4": "Auto", "5": "E-star",
				},
				ReadWrite: "RW",
			},
			"t_temp": {
				Key: "t_temp", Name: "Target Temperature", Type: TypeNumber, Step: 1,
				ValueRange: "16~32,61~90", ReadWrite: "RW",
			},
			"t_temp_type": {
				Key: "t_temp_type", Name: "Temperature Unit", Type: TypeEnum, Step: 1,
				ValueRange: "0,1",
				ValueMap:   map[string]string{"0": "Celsius", "1": "Fahrenheit"},
				ReadWrite:  "RW",
			},
			"t_fan_speed": {
				Key: "t_fan_speed", Name: "Fan Speed", Type: TypeEnum, Step: 1,
				ValueRange: "0,5,6,7,8,9",
				ValueMap: map[string]string{
					"0": "Auto", "2": "Low", "3": "Medium", "4": "High",
					"5": "Low", "6": "Mid-Low", "7": "Mid", "8": "Mid-High",
					"9": "High",
				},
				ReadWrite: "RW",
			},
			"t_up_down": {
				Key: "t_up_down", Name: "Swing Vertical", Type: TypeEnum, Step: 1,
				ValueRange: "0,1", ValueMap: onOff, ReadWrite: "RW",
			},
			"t_left_right": {
				Key: "t_left_right", Name: "Swing Horizontal", Type: TypeEnum, Step: 1,
				ValueRange: "0,1", ValueMap: onOff, ReadWrite: "RW",
			},
			"t_fan_mute": {
				Key: "t_fan_mute", Name: "Quiet Mode", Type: TypeEnum, Step: 1,
				ValueRange: "0,1", ValueMap: onOff, ReadWrite: "RW",
			},
			"t_super": {
				Key: "t_super", Name: "Turbo", Type: TypeEnum, Step: 1,
				ValueRange: "0,1", ValueMap: onOff, ReadWrite: "RW",
			},
			"t_eco": {
				Key: "t_eco", Name: "Eco Mode", Type: TypeEnum, Step: 1,
				ValueRange: "0,1", ValueMap: onOff, ReadWrite: "RW",
			},
			"t_8heat": {
				Key: "t_8heat", Name: "8°C Heat", Type: TypeEnum, Step: 1,
				ValueRange: "0,1", ValueMap: onOff, ReadWrite: "RW",
			},
			"t_humidity": {
				Key: "t_humidity", Name: "Target Humidity", Type: TypeNumber, Step: 5,
				ValueRange: "30~80", ReadWrite: "RW",
			},
			"f_humidity": {
				Key: "f_humidity", Name: "Indoor Humidity", Type: TypeNumber, Step: 1,
				ValueRange: "30~90", ReadWrite: "R",
			},
			"f_temp_in": {
				Key: "f_temp_in", Name: "Indoor Temperature", Type: TypeNumber,
				ReadWrite: "R",
			},
			"f_power_consumption": {
				Key: "f_power_consumption", Name: "Power Consumption", Type: TypeNumber,
				ReadWrite: "R",
			},
		},
	}
}
