package devices

// hubSchema covers the 043 hub and controller units. These act as bridges
// for other devices and expose mostly metadata rather than live status.
func hubSchema() *Schema {
	return &Schema{
		TypeCode: "043",
		Name:     "Hub",
		Attributes: map[string]Attribute{
			"online_status": {
				Key: "online_status", Name: "Online Status", Type: TypeEnum, Step: 1,
				ValueRange: "0,1",
				ValueMap:   map[string]string{"0": "Offline", "1": "Online"},
				ReadWrite:  "R",
			},
			"bindTime": {
				Key: "bindTime", Name: "Binding Time", Type: TypeNumber,
				ReadWrite: "R",
			},
			"useTime": {
				Key: "useTime", Name: "Last Usage Time", Type: TypeNumber,
				ReadWrite: "R",
			},
			"roomName": {
				Key: "roomName", Name: "Room Name", Type: TypeString,
				ReadWrite: "RW",
			},
			"energyRole": {
				Key: "energyRole", Name: "Energy Monitoring Role", Type: TypeEnum, Step: 1,
				ValueRange: "0,1,2",
				ValueMap: map[string]string{
					"0": "None", "1": "Monitor", "2": "Controller",
				},
				ReadWrite: "R",
			},
			"role": {
				Key: "role", Name: "User Role", Type: TypeEnum, Step: 1,
				ValueRange: "0,1,2",
				ValueMap: map[string]string{
					"0": "Owner", "1": "Admin", "2": "Guest",
				},
				ReadWrite: "R",
			},
		},
	}
}
