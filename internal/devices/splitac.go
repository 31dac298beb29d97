package devices

// splitACSchema covers the 009-199 split air conditioner. It is the bean
// attribute set without the humidity controls and with the 199 feature
// line's fan speed labels.
func splitACSchema() *Schema {
	return &Schema{
		TypeCode:    "009",
		FeatureCode: "199",
		Name:        "Split AC",
		Attributes: map[string]Attribute{
			"t_power": {
				Key: "t_power", Name: "Power", Type: TypeEnum, Step: 1,
				ValueRange: "0,1", ValueMap: onOff, ReadWrite: "RW",
			},
			"t_work_mode": {
				Key: "t_work_mode", Name: "Mode", Type: TypeEnum, Step: 1,
				ValueRange: "0,1,2,3,4",
				ValueMap: map[string]string{
					"0": "Fan", "1": "Heat", "2": "Cool", "3": "Dry", "4": "Auto",
				},
				ReadWrite: "RW",
			},
			"t_temp": {
				Key: "t_temp", Name: "Target Temperature", Type: TypeNumber, Step: 1,
				ValueRange: "16~32,61~90", ReadWrite: "RW",
			},
			"t_fan_speed": {
				Key: "t_fan_speed", Name: "Fan Speed", Type: TypeEnum, Step: 1,
				ValueRange: "0,5,6,7,8,9",
				ValueMap: map[string]string{
					"0": "Auto", "5": "Ultra Low", "6": "Low", "7": "Medium",
					"8": "High", "9": "Ultra High",
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
			"t_8heat": {
				Key: "t_8heat", Name: "8°C Heat", Type: TypeEnum, Step: 1,
				ValueRange: "0,1", ValueMap: onOff, ReadWrite: "RW",
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
