package mtconnect

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"time"

	"github.com/iwtcode/cncSimulator/internal/domain/models"
)

const (
	sender     = "cnc-simulator"
	version    = "1.8"
	instanceID = "1"
	noAlarm    = "NONE"
)

// Streams - корневой элемент ответа current.
type Streams struct {
	XMLName xml.Name `xml:"MTConnectStreams"`
	Header  Header   `xml:"Header"`
	Devices []Device `xml:"Streams>DeviceStream"`
}

type Header struct {
	CreationTime string `xml:"creationTime,attr"`
	Sender       string `xml:"sender,attr"`
	InstanceID   string `xml:"instanceId,attr"`
	Version      string `xml:"version,attr"`
}

type Device struct {
	Name       string      `xml:"name,attr"`
	UUID       string      `xml:"uuid,attr"`
	Components []Component `xml:"ComponentStream"`
}

type Component struct {
	Name    string   `xml:"component,attr"`
	Samples []Sample `xml:"Samples>Sample"`
}

type Sample struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

// Current строит документ текущего состояния одного станка.
func Current(snap models.MachineSnapshot, now time.Time) Streams {
	return Streams{
		Header: Header{
			CreationTime: now.UTC().Format(time.RFC3339),
			Sender:       sender,
			InstanceID:   instanceID,
			Version:      version,
		},
		Devices: []Device{device(snap)},
	}
}

// Marshal сериализует документ с XML-декларацией.
func Marshal(doc Streams) ([]byte, error) {
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("mtconnect: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

func device(s models.MachineSnapshot) Device {
	alarm := noAlarm
	if s.HasAlarm() {
		alarm = *s.Alarm
	}

	components := []Component{
		{Name: "Controller", Samples: []Sample{
			{"power", strconv.FormatBool(s.Power)},
			{"execution", string(s.Execution)},
			{"cycle_phase", string(s.CyclePhase)},
			{"program", s.ProgramRunning},
		}},
		{Name: "Spindle", Samples: []Sample{
			{"spindle_speed", num(s.SpindleSpeed, 1)},
			{"spindle_load", num(s.SpindleLoad, 2)},
			{"current_amps", num(s.CurrentAmps, 2)},
		}},
		{Name: "Axes", Samples: []Sample{
			{"X", num(s.AxisPositions.X, 3)},
			{"Y", num(s.AxisPositions.Y, 3)},
			{"Z", num(s.AxisPositions.Z, 3)},
			{"feed_rate", num(s.FeedRate, 1)},
		}},
		{Name: "Production", Samples: []Sample{
			{"part_count", strconv.FormatInt(s.PartCount, 10)},
			{"total_cycles", strconv.FormatInt(s.TotalCycles, 10)},
			{"machine_on_hours", num(s.MachineOnHours, 3)},
			{"spindle_hours", num(s.SpindleHours, 3)},
		}},
		{Name: "Thermal", Samples: []Sample{
			{"temperature", num(s.Temperature, 2)},
			{"vibration", num(s.Vibration, 3)},
		}},
	}

	if s.Coolant != nil {
		components = append(components, Component{Name: "Coolant", Samples: []Sample{
			{"level", num(s.Coolant.Level, 2)},
			{"pressure", num(s.Coolant.Pressure, 2)},
			{"temperature", num(s.Coolant.Temperature, 2)},
		}})
	}
	if len(s.Tools) > 0 {
		components = append(components, Component{Name: "Tool", Samples: []Sample{
			{"current_tool", strconv.Itoa(s.CurrentTool)},
			{"tool_wear", num(s.ToolWear, 4)},
		}})
	}

	components = append(components, Component{Name: "Alarms", Samples: []Sample{{"alarm", alarm}}})

	return Device{Name: s.Name, UUID: s.ID, Components: components}
}

func num(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}
