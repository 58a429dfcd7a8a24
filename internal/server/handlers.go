package server

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ChicagoDave/roomplanner/pkg/export"
	"github.com/ChicagoDave/roomplanner/pkg/geo"
	"github.com/ChicagoDave/roomplanner/pkg/layout"
	"github.com/ChicagoDave/roomplanner/pkg/scene2d"
	"github.com/ChicagoDave/roomplanner/pkg/session"
	"github.com/ChicagoDave/roomplanner/pkg/spec"
	"github.com/ChicagoDave/roomplanner/pkg/validation"
)

// pointRequest is a pointer position. Screen coordinates are canvas pixels
// and are mapped into the room through the current viewport.
type pointRequest struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Screen bool    `json:"screen"`
}

func (p pointRequest) resolve(e *session.Editor) geo.Point2D {
	pt := geo.Pt(p.X, p.Y)
	if p.Screen {
		return e.ToPhysical(pt)
	}
	return pt
}

type roomRequest struct {
	Unit   string   `json:"unit"`
	Width  *float64 `json:"width"`
	Length *float64 `json:"length"`
}

type sizeRequest struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type snapRequest struct {
	Enabled bool `json:"enabled"`
}

type dropRequest struct {
	AssetType string `json:"asset_type"`
	pointRequest
}

// placementResponse answers drags and drops. A rejected placement is not an
// error: Applied is false and the scene is unchanged.
type placementResponse struct {
	Applied    bool             `json:"applied"`
	Resolution string           `json:"resolution,omitempty"`
	ID         string           `json:"id,omitempty"`
	Scene      *scene2d.Scene2D `json:"scene"`
}

func (s *Server) handleIndex(c echo.Context) error {
	return c.HTML(http.StatusOK, `<!DOCTYPE html>
<html><head><title>RoomPlanner</title></head>
<body style="margin:0;background:#f4f8ff;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<div style="text-align:center">
<h1>RoomPlanner</h1>
<img src="/api/export/svg" alt="room layout">
</div>
</body></html>`)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleScene(c echo.Context) error {
	return respond(c, http.StatusOK, s.snapshot())
}

// handleValidation returns the full report, or with ?field= only the findings
// recorded against that room.yaml path.
func (s *Server) handleValidation(c echo.Context) error {
	var report *validation.Report
	_ = s.do(func(e *session.Editor) error {
		report = validation.ValidateSchema(e.Spec())
		report.Merge(e.Report())
		return nil
	})
	field := c.QueryParam("field")
	if field == "" {
		return respond(c, http.StatusOK, report)
	}
	findings := report.ForField(field)
	if findings == nil {
		findings = []validation.Result{}
	}
	return respond(c, http.StatusOK, map[string]any{
		"field":    field,
		"valid":    report.Valid,
		"findings": findings,
	})
}

func (s *Server) handleSetRoom(c echo.Context) error {
	var req roomRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid room body")
	}
	err := s.do(func(e *session.Editor) error {
		if req.Unit != "" {
			if err := e.SetUnit(req.Unit); err != nil {
				return err
			}
		}
		if req.Width != nil || req.Length != nil {
			st := e.State()
			w, l := st.Width, st.Length
			if req.Width != nil {
				w = *req.Width
			}
			if req.Length != nil {
				l = *req.Length
			}
			e.SetRoom(w, l)
		}
		return nil
	})
	if err != nil {
		return fromEditor(err)
	}
	return respond(c, http.StatusOK, s.snapshot())
}

func indexParam(c echo.Context) (int, error) {
	i, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return 0, badRequest("invalid index %q", c.Param("index"))
	}
	return i, nil
}

func (s *Server) handleMoveVertex(c echo.Context) error {
	i, err := indexParam(c)
	if err != nil {
		return err
	}
	var req pointRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid point body")
	}
	if err := s.do(func(e *session.Editor) error { return e.MoveVertex(i, req.resolve(e)) }); err != nil {
		return fromEditor(err)
	}
	return respond(c, http.StatusOK, s.snapshot())
}

func (s *Server) handleInsertVertex(c echo.Context) error {
	i, err := indexParam(c)
	if err != nil {
		return err
	}
	if err := s.do(func(e *session.Editor) error { return e.InsertVertex(i) }); err != nil {
		return fromEditor(err)
	}
	return respond(c, http.StatusOK, s.snapshot())
}

func (s *Server) handleRemoveVertex(c echo.Context) error {
	i, err := indexParam(c)
	if err != nil {
		return err
	}
	if err := s.do(func(e *session.Editor) error { return e.RemoveVertex(i) }); err != nil {
		return fromEditor(err)
	}
	return respond(c, http.StatusOK, s.snapshot())
}

func (s *Server) handleResetPolygon(c echo.Context) error {
	_ = s.do(func(e *session.Editor) error {
		e.ResetPolygon()
		return nil
	})
	return respond(c, http.StatusOK, s.snapshot())
}

func (s *Server) handleDragDoor(c echo.Context) error {
	var req pointRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid point body")
	}
	var applied bool
	err := s.do(func(e *session.Editor) error {
		var err error
		applied, err = e.DragDoor(req.resolve(e))
		return err
	})
	if err != nil {
		return fromEditor(err)
	}
	s.metrics.Placement("door", appliedLabel(applied))
	return respond(c, http.StatusOK, placementResponse{Applied: applied, Scene: s.snapshot()})
}

func (s *Server) handleRackParams(c echo.Context) error {
	var def spec.RackDef
	if err := c.Bind(&def); err != nil {
		return badRequest("invalid rack parameters body")
	}
	if err := s.do(func(e *session.Editor) error { return e.SetRackParams(def) }); err != nil {
		return fromEditor(err)
	}
	return respond(c, http.StatusOK, s.snapshot())
}

func (s *Server) handleRackSnap(c echo.Context) error {
	var req snapRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid snap body")
	}
	_ = s.do(func(e *session.Editor) error {
		e.SetSnapToGrid(req.Enabled)
		return nil
	})
	return respond(c, http.StatusOK, s.snapshot())
}

func (s *Server) handleResetRacks(c echo.Context) error {
	_ = s.do(func(e *session.Editor) error {
		e.ResetRacks()
		return nil
	})
	return respond(c, http.StatusOK, s.snapshot())
}

func (s *Server) handleDragRack(c echo.Context) error {
	i, err := indexParam(c)
	if err != nil {
		return err
	}
	var req pointRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid point body")
	}
	var applied bool
	err = s.do(func(e *session.Editor) error {
		var err error
		applied, err = e.DragRack(i, req.resolve(e))
		return err
	})
	if err != nil {
		return fromEditor(err)
	}
	s.metrics.Placement("rack", appliedLabel(applied))
	return respond(c, http.StatusOK, placementResponse{Applied: applied, Scene: s.snapshot()})
}

func (s *Server) handleDrop(c echo.Context) error {
	var req dropRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid drop body")
	}
	var u layout.ACUnit
	var res layout.Resolution
	err := s.do(func(e *session.Editor) error {
		var err error
		u, res, err = e.DropAsset(req.AssetType, req.resolve(e))
		return err
	})
	if err != nil {
		return fromEditor(err)
	}
	s.metrics.Placement("drop", res.String())
	return respond(c, http.StatusOK, placementResponse{
		Applied:    res.Applied(),
		Resolution: res.String(),
		ID:         u.ID,
		Scene:      s.snapshot(),
	})
}

func (s *Server) handleDragAC(c echo.Context) error {
	id := c.Param("id")
	var req pointRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid point body")
	}
	var res layout.Resolution
	err := s.do(func(e *session.Editor) error {
		var err error
		res, err = e.DragAC(id, req.resolve(e))
		return err
	})
	if err != nil {
		return fromEditor(err)
	}
	s.metrics.Placement("ac", res.String())
	return respond(c, http.StatusOK, placementResponse{
		Applied:    res.Applied(),
		Resolution: res.String(),
		ID:         id,
		Scene:      s.snapshot(),
	})
}

func (s *Server) handleResizeAC(c echo.Context) error {
	var req sizeRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid size body")
	}
	if err := s.do(func(e *session.Editor) error { return e.ResizeAC(c.Param("id"), req.Width, req.Height) }); err != nil {
		return fromEditor(err)
	}
	return respond(c, http.StatusOK, s.snapshot())
}

func (s *Server) handleDeleteAC(c echo.Context) error {
	if err := s.do(func(e *session.Editor) error { return e.DeleteAC(c.Param("id")) }); err != nil {
		return fromEditor(err)
	}
	return respond(c, http.StatusOK, s.snapshot())
}

func (s *Server) handleSelectAC(c echo.Context) error {
	if err := s.do(func(e *session.Editor) error { return e.SelectAC(c.Param("id")) }); err != nil {
		return fromEditor(err)
	}
	return respond(c, http.StatusOK, s.snapshot())
}

// handleExport snapshots the editor with the export flag set, encodes
// without holding the lock, then clears the flag. Drags arriving meanwhile
// are refused.
func (s *Server) handleExport(c echo.Context) error {
	format, err := export.ParseFormat(c.Param("format"))
	if err != nil {
		return badRequest("%v", err)
	}

	var st session.State
	if err := s.do(func(e *session.Editor) error {
		if err := e.BeginExport(); err != nil {
			return err
		}
		st = e.State()
		return nil
	}); err != nil {
		return fromEditor(err)
	}
	defer s.do(func(e *session.Editor) error {
		e.EndExport()
		return nil
	})

	var buf bytes.Buffer
	if err := export.Encode(&buf, scene2d.Assemble2D(st), format); err != nil {
		return err
	}
	s.metrics.Export(string(format))
	s.log.Info("layout exported", "format", format, "bytes", buf.Len())

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", format.Filename()))
	return c.Blob(http.StatusOK, format.ContentType(), buf.Bytes())
}

func appliedLabel(applied bool) string {
	if applied {
		return "applied"
	}
	return "rejected"
}
