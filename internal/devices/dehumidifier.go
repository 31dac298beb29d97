package devices

// dehumidifierSchema covers the 007 dehumidifiers, any feature line.
func dehumidifierSchema() *Schema {
	return &Schema{
		TypeCode: "007",
		Name:     "Dehumidifier",
		Attributes: map[string]Attribute{
			"t_power": {
				Key: "t_power", Name: "Power", Type: TypeEnum, Step: 1,
				ValueRange: "0,1", ValueMap: onOff, ReadWrite: "RW",
			},
			"t_work_mode": {
				Key: "t_work_mode", Name: "Mode", Type: TypeEnum, Step: 1,
				ValueRange: "0,1,2,3",
				ValueMap: map[string]string{
					"0": "Manual", "1": "Continuous", "2": "Auto", "3": "Dry Clothes",
				},
				ReadWrite: "RW",
			},
			"t_humidity": {
				Key: "t_humidity", Name: "Target Humidity", Type: TypeNumber, Step: 5,
				ValueRange: "30~80", ReadWrite: "RW",
			},
			"f_humidity": {
				Key: "f_humidity", Name: "Indoor Humidity", Type: TypeNumber, Step: 1,
				ValueRange: "30~90", ReadWrite: "R",
			},
			"t_fan_speed": {
				Key: "t_fan_speed", Name: "Fan Speed", Type: TypeEnum, Step: 1,
				ValueRange: "0,1,2,3",
				ValueMap: map[string]string{
					"0": "Auto", "1": "High", "2": "Medium", "3": "Low",
				},
				ReadWrite: "RW",
			},
			"t_child_lock": {
				Key: "t_child_lock", Name: "Child Lock", Type: TypeEnum, Step: 1,
				ValueRange: "0,1", ValueMap: onOff, ReadWrite: "RW",
			},
			"f_water_full": {
				Key: "f_water_full", Name: "Water Tank Full", Type: TypeEnum, Step: 1,
				ValueRange: "0,1",
				ValueMap:   map[string]string{"0": "No", "1": "Yes"},
				ReadWrite:  "R",
			},
			"f_power_consumption": {
				Key: "f_power_consumption", Name: "Power Consumption", Type: TypeNumber,
				ReadWrite: "R",
			},
		},
	}
}
