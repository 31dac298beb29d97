package devices

// stepStatus is the per-step state enum shared by the oven baking steps.
var stepStatus = map[string]string{
	"0": "Inactive", "1": "Active", "2": "Paused", "3": "Finished",
}

// ovenSchema covers the 013 built-in ovens.
func ovenSchema() *Schema {
	return &Schema{
		TypeCode: "013",
		Name:     "Oven",
		Attributes: map[string]Attribute{
			"Status": {
				Key: "Status", Name: "Power", Type: TypeEnum, Step: 1,
				ValueRange: "0,1", ValueMap: onOff, ReadWrite: "RW",
			},
			"Child_lock": {
				Key: "Child_lock", Name: "Child Lock", Type: TypeEnum, Step: 1,
				ValueRange: "0,1", ValueMap: onOff, ReadWrite: "RW",
			},
			"Door": {
				Key: "Door", Name: "Door Status", Type: TypeEnum, Step: 1,
				ValueRange: "0,1",
				ValueMap:   map[string]string{"0": "Closed", "1": "Open"},
				ReadWrite:  "R",
			},
			"Door_lock": {
				Key: "Door_lock", Name: "Door Lock", Type: TypeEnum, Step: 1,
				ValueRange: "0,1",
				ValueMap:   map[string]string{"0": "Unlocked", "1": "Locked"},
				ReadWrite:  "RW",
			},
			"Step_1_status": {
				Key: "Step_1_status", Name: "Step 1 Status", Type: TypeEnum, Step: 1,
				ValueRange: "0,1,2,3", ValueMap: stepStatus, ReadWrite: "RW",
			},
			"Step_1_set_temperature": {
				Key: "Step_1_set_temperature", Name: "Step 1 Target Temperature",
				Type: TypeNumber, Step: 1, ValueRange: "30~300", ReadWrite: "RW",
			},
			"Step_1_bake_mode": {
				Key: "Step_1_bake_mode", Name: "Step 1 Bake Mode", Type: TypeEnum, Step: 1,
				ValueRange: "0,1,2,3,4,5,6,7,8,9,10",
				ValueMap: map[string]string{
					"0": "Conventional", "1": "Fan", "2": "Grill", "3": "Bottom Heat",
					"4": "Defrost", "5": "Steam", "6": "Microwave", "7": "Combination",
					"8": "Pizza", "9": "Eco", "10": "Fast Preheat",
				},
				ReadWrite: "RW",
			},
			"Step_1_duration": {
				Key: "Step_1_duration", Name: "Step 1 Duration", Type: TypeNumber, Step: 1,
				ValueRange: "0~1440", ReadWrite: "RW",
			},
			"Step_1_remaining_time": {
				Key: "Step_1_remaining_time", Name: "Step 1 Remaining Time",
				Type: TypeNumber, ReadWrite: "R",
			},
			"Step_2_status": {
				Key: "Step_2_status", Name: "Step 2 Status", Type: TypeEnum, Step: 1,
				ValueRange: "0,1,2,3", ValueMap: stepStatus, ReadWrite: "RW",
			},
			"Step_2_set_temperature": {
				Key: "Step_2_set_temperature", Name: "Step 2 Target Temperature",
				Type: TypeNumber, Step: 1, ValueRange: "30~300", ReadWrite: "RW",
			},
			"Step_3_status": {
				Key: "Step_3_status", Name: "Step 3 Status", Type: TypeEnum, Step: 1,
				ValueRange: "0,1,2,3", ValueMap: stepStatus, ReadWrite: "RW",
			},
			"Step_3_set_temperature": {
				Key: "Step_3_set_temperature", Name: "Step 3 Target Temperature",
				Type: TypeNumber, Step: 1, ValueRange: "30~300", ReadWrite: "RW",
			},
			"Current_baking_step": {
				Key: "Current_baking_step", Name: "Current Baking Step",
				Type: TypeNumber, ReadWrite: "R",
			},
			"Oven_measured_temperature": {
				Key: "Oven_measured_temperature", Name: "Current Oven Temperature",
				Type: TypeNumber, ReadWrite: "R",
			},
			"Oven_temperature_unit": {
				Key: "Oven_temperature_unit", Name: "Temperature Unit", Type: TypeEnum,
				Step: 1, ValueRange: "0,1",
				ValueMap:  map[string]string{"0": "Celsius", "1": "Fahrenheit"},
				ReadWrite: "RW",
			},
		},
	}
}
