package mcp

// DrawFishInput is the input for the draw_fish tool.
type DrawFishInput struct {
	Address string `json:"address" jsonschema:"required,Address of the target X server (host or host:display; display :0.0 is assumed when omitted)"`
	Mode    string `json:"mode,omitempty" jsonschema:"Drawing-data mode: 'bad' selects the embedded fallback set; anything else generates a fresh fish"`
}

// DrawFishOutput is the output for the draw_fish tool.
type DrawFishOutput struct {
	Message string `json:"message"`
}

// PreviewDataInput is the input for the preview_data tool.
type PreviewDataInput struct {
	Mode string `json:"mode,omitempty" jsonschema:"Drawing-data mode: 'bad' selects the embedded fallback set; anything else generates a fresh fish"`
}

// PreviewDataOutput is the output for the preview_data tool.
type PreviewDataOutput struct {
	Polylines int    `json:"polylines"`
	Points    int    `json:"points"`
	Data      string `json:"data"`
}
