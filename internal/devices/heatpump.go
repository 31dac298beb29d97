package devices

var yesNo = map[string]string{"0": "No", "1": "Yes"}

// atwSchema covers the 035-699 air-to-water heat pump line.
func atwSchema() *Schema {
	return &Schema{
		TypeCode:    "035",
		FeatureCode: "699",
		Name:        "Heat Pump",
		Attributes: map[string]Attribute{
			"t_power": {
				Key: "t_power", Name: "Power", Type: TypeEnum, Step: 1,
				ValueRange: "0,1", ValueMap: onOff, ReadWrite: "RW",
			},
			"t_work_mode": {
				Key: "t_work_mode", Name: "Mode", Type: TypeEnum, Step: 1,
				ValueRange: "0,1,2,3,4,5,6,7,8,9,10,11,12",
				ValueMap: map[string]string{
					"0": "Off", "1": "Heat", "2": "Cool", "3": "Auto",
					"4": "Hot Water", "5": "Heat + Hot Water", "6": "Cool + Hot Water",
					"7": "Auto + Hot Water", "8": "Standard", "9": "Eco",
					"10": "Dual Hot Water", "11": "Dual 1", "12": "Electric Hot Water",
				},
				ReadWrite: "RW",
			},
			"t_temp": {
				Key: "t_temp", Name: "Target Temperature", Type: TypeNumber, Step: 1,
				ValueRange: "16~32", ReadWrite: "RW",
			},
			"f_temp_in": {
				Key: "f_temp_in", Name: "Indoor Temperature", Type: TypeNumber,
				ReadWrite: "R",
			},
			"t_dhw_temp": {
				Key: "t_dhw_temp", Name: "DHW Target Temperature", Type: TypeNumber, Step: 1,
				ValueRange: "30~60", ReadWrite: "RW",
			},
			"f_dhw_temp": {
				Key: "f_dhw_temp", Name: "DHW Current Temperature", Type: TypeNumber,
				ReadWrite: "R",
			},
			"t_zone1water_settemp1": {
				Key: "t_zone1water_settemp1", Name: "Zone 1 Target Temperature",
				Type: TypeNumber, Step: 1, ValueRange: "16~32", ReadWrite: "RW",
			},
			"f_zone1water_temp1": {
				Key: "f_zone1water_temp1", Name: "Zone 1 Current Temperature",
				Type: TypeNumber, ReadWrite: "R",
			},
			"t_zone2water_settemp2": {
				Key: "t_zone2water_settemp2", Name: "Zone 2 Target Temperature",
				Type: TypeNumber, Step: 1, ValueRange: "16~32", ReadWrite: "RW",
			},
			"f_zone2water_temp2": {
				Key: "f_zone2water_temp2", Name: "Zone 2 Current Temperature",
				Type: TypeNumber, ReadWrite: "R",
			},
			"f_in_water_temp": {
				Key: "f_in_water_temp", Name: "Inlet Water Temperature",
				Type: TypeNumber, ReadWrite: "R",
			},
			"f_out_water_temp": {
				Key: "f_out_water_temp", Name: "Outlet Water Temperature",
				Type: TypeNumber, ReadWrite: "R",
			},
			"t_eco": {
				Key: "t_eco", Name: "Eco Mode", Type: TypeEnum, Step: 1,
				ValueRange: "0,1", ValueMap: onOff, ReadWrite: "RW",
			},
			"t_super": {
				Key: "t_super", Name: "Turbo", Type: TypeEnum, Step: 1,
				ValueRange: "0,1", ValueMap: onOff, ReadWrite: "RW",
			},
			"f_power_consumption": {
				Key: "f_power_consumption", Name: "Power Consumption", Type: TypeNumber,
				ReadWrite: "R",
			},
		},
	}
}

// zoneControllerSchema covers the 044 controller units that front multi
// zone heat pump installations with DHW and pool circuits. The status
// vocabulary is the controller's own, not the t_/f_ bean keys.
func zoneControllerSchema() *Schema {
	return &Schema{
		TypeCode: "044",
		Name:     "Heat Pump Controller",
		Attributes: map[string]Attribute{
			"mode": {
				Key: "mode", Name: "Operating Mode", Type: TypeEnum, Step: 1,
				ValueRange: "0,1,2,3",
				ValueMap: map[string]string{
					"0": "Off", "1": "Heating", "2": "Cooling", "3": "Auto",
				},
				ReadWrite: "RW",
			},
			"realRunMode": {
				Key: "realRunMode", Name: "Current Run Mode", Type: TypeEnum, Step: 1,
				ValueRange: "0,1,2,3,4,5",
				ValueMap: map[string]string{
					"0": "Standby", "1": "Heating", "2": "Cooling",
					"3": "DHW", "4": "Defrost", "5": "Emergency",
				},
				ReadWrite: "R",
			},
			"A2W_SW_ON": {
				Key: "A2W_SW_ON", Name: "System Power", Type: TypeEnum, Step: 1,
				ValueRange: "0,1", ValueMap: onOff, ReadWrite: "RW",
			},
			"c1_SW_ON": {
				Key: "c1_SW_ON", Name: "Zone 1 Power", Type: TypeEnum, Step: 1,
				ValueRange: "0,1", ValueMap: onOff, ReadWrite: "RW",
			},
			"c1R1T": {
				Key: "c1R1T", Name: "Zone 1 Room Temperature", Type: TypeNumber,
				ReadWrite: "R",
			},
			"Trc1R1": {
				Key: "Trc1R1", Name: "Zone 1 Target Temperature", Type: TypeNumber,
				Step: 1, ValueRange: "16~30", ReadWrite: "RW",
			},
			"c1ws": {
				Key: "c1ws", Name: "Zone 1 Water Supply Temperature", Type: TypeNumber,
				ReadWrite: "R",
			},
			"c2_SW_ON": {
				Key: "c2_SW_ON", Name: "Zone 2 Power", Type: TypeEnum, Step: 1,
				ValueRange: "0,1", ValueMap: onOff, ReadWrite: "RW",
			},
			"c2R1T": {
				Key: "c2R1T", Name: "Zone 2 Room Temperature", Type: TypeNumber,
				ReadWrite: "R",
			},
			"Trc2R1": {
				Key: "Trc2R1", Name: "Zone 2 Target Temperature", Type: TypeNumber,
				Step: 1, ValueRange: "16~30", ReadWrite: "RW",
			},
			"DHW_SW_ON": {
				Key: "DHW_SW_ON", Name: "DHW Power", Type: TypeEnum, Step: 1,
				ValueRange: "0,1", ValueMap: onOff, ReadWrite: "RW",
			},
			"DHWs": {
				Key: "DHWs", Name: "DHW Status", Type: TypeEnum, Step: 1,
				ValueRange: "0,1,2",
				ValueMap: map[string]string{
					"0": "Off", "1": "Heating", "2": "Ready",
				},
				ReadWrite: "R",
			},
			"TDHW": {
				Key: "TDHW", Name: "DHW Target Temperature", Type: TypeNumber, Step: 1,
				ValueRange: "30~60", ReadWrite: "RW",
			},
			"TDHWS": {
				Key: "TDHWS", Name: "DHW Current Temperature", Type: TypeNumber,
				ReadWrite: "R",
			},
			"DHW_Boost_s": {
				Key: "DHW_Boost_s", Name: "DHW Boost Active", Type: TypeEnum, Step: 1,
				ValueRange: "0,1", ValueMap: yesNo, ReadWrite: "R",
			},
			"SWP_SW_ON": {
				Key: "SWP_SW_ON", Name: "Pool Heating Power", Type: TypeEnum, Step: 1,
				ValueRange: "0,1", ValueMap: onOff, ReadWrite: "RW",
			},
			"Tswp": {
				Key: "Tswp", Name: "Pool Current Temperature", Type: TypeNumber,
				ReadWrite: "R",
			},
			"Tswps": {
				Key: "Tswps", Name: "Pool Target Temperature", Type: TypeNumber, Step: 1,
				ValueRange: "20~35", ReadWrite: "RW",
			},
			"Ta_2": {
				Key: "Ta_2", Name: "Outdoor Temperature", Type: TypeNumber,
				ReadWrite: "R",
			},
			"Twi": {
				Key: "Twi", Name: "Water Inlet Temperature", Type: TypeNumber,
				ReadWrite: "R",
			},
			"Two": {
				Key: "Two", Name: "Water Outlet Temperature", Type: TypeNumber,
				ReadWrite: "R",
			},
			"Pw": {
				Key: "Pw", Name: "Current Power Consumption", Type: TypeNumber,
				ReadWrite: "R",
			},
			"isSilentMode": {
				Key: "isSilentMode", Name: "Silent Mode", Type: TypeEnum, Step: 1,
				ValueRange: "0,1", ValueMap: onOff, ReadWrite: "RW",
			},
			"isECO": {
				Key: "isECO", Name: "Eco Mode", Type: TypeEnum, Step: 1,
				ValueRange: "0,1", ValueMap: onOff, ReadWrite: "RW",
			},
			"isNightMode": {
				Key: "isNightMode", Name: "Night Mode", Type: TypeEnum, Step: 1,
				ValueRange: "0,1", ValueMap: onOff, ReadWrite: "R",
			},
			"isFastHotWater": {
				Key: "isFastHotWater", Name: "Fast Hot Water", Type: TypeEnum, Step: 1,
				ValueRange: "0,1", ValueMap: onOff, ReadWrite: "RW",
			},
			"isDisinfect": {
				Key: "isDisinfect", Name: "Disinfection Mode", Type: TypeEnum, Step: 1,
				ValueRange: "0,1", ValueMap: onOff, ReadWrite: "RW",
			},
			"Anti_Legionella_s": {
				Key: "Anti_Legionella_s", Name: "Anti-Legionella Protection",
				Type: TypeEnum, Step: 1, ValueRange: "0,1", ValueMap: yesNo,
				ReadWrite: "R",
			},
			"alarmCode": {
				Key: "alarmCode", Name: "System Alarm Code", Type: TypeNumber,
				ReadWrite: "R",
			},
		},
	}
}
