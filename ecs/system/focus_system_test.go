package system

import (
	"testing"

	"orrery/camera"
	"orrery/common"
	"orrery/ecs"
	"orrery/ecs/component"
)

func newFocusFixture(t *testing.T) (*ecs.World, *ecs.Scheduler, *camera.Camera, *FocusSystem, ecs.Entity) {
	t.Helper()

	w := ecs.NewWorld()
	body := w.CreateEntity()
	if err := ecs.Add(w, body, component.TransformComponent, &component.Transform{
		Position: common.Vec3{X: 90, Y: 0, Z: 0},
	}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, body, component.BodyComponent, &component.Body{Name: "Earth", Radius: 4.8}); err != nil {
		t.Fatal(err)
	}

	cam := camera.New(camera.Pose{Position: common.Vec3{Y: 160, Z: 340}}, 1280, 720)
	focus := NewFocusSystem(cam, camera.NewFocusController())
	sched := ecs.NewScheduler(focus)
	return w, sched, cam, focus, body
}

func TestFocusSystemFliesToBody(t *testing.T) {
	w, sched, cam, focus, body := newFocusFixture(t)

	w.Events().Push(ecs.Event{Kind: ecs.EventFocusBody, Data: ecs.FocusBodyEvent{Body: body}})

	converged := false
	for i := 0; i < 2000; i++ {
		sched.Update(w)
		if focus.Controller().State() == camera.Idle && i > 0 {
			converged = true
			break
		}
	}
	if !converged {
		t.Fatal("focus transition never converged")
	}

	bodyPos := common.Vec3{X: 90}
	if cam.Pose().LookAt != bodyPos {
		t.Fatalf("camera looks at %+v, want body position %+v", cam.Pose().LookAt, bodyPos)
	}
	dist := cam.Pose().Position.Distance(bodyPos)
	want := 4.8 * framingDistance
	if dist < want-0.01 || dist > want+0.01 {
		t.Fatalf("camera stopped %v from body, want ~%v", dist, want)
	}
}

func TestFocusSystemResetReturnsHome(t *testing.T) {
	w, sched, cam, focus, body := newFocusFixture(t)

	w.Events().Push(ecs.Event{Kind: ecs.EventFocusBody, Data: ecs.FocusBodyEvent{Body: body}})
	sched.Update(w)
	for i := 0; i < 2000 && focus.Controller().State() != camera.Idle; i++ {
		sched.Update(w)
	}

	w.Events().Push(ecs.Event{Kind: ecs.EventResetView})
	for i := 0; i < 2000; i++ {
		sched.Update(w)
		if focus.Controller().State() == camera.Idle && cam.Pose() == cam.Home() {
			return
		}
	}
	t.Fatalf("camera never returned home: %+v", cam.Pose())
}

func TestFocusSystemIgnoresUnknownEntity(t *testing.T) {
	w, sched, cam, _, _ := newFocusFixture(t)
	before := cam.Pose()

	w.Events().Push(ecs.Event{Kind: ecs.EventFocusBody, Data: ecs.FocusBodyEvent{Body: ecs.Entity(99999)}})
	sched.Update(w)

	if cam.Pose() != before {
		t.Fatalf("pose changed on unknown-entity request: %+v", cam.Pose())
	}
}

func TestFocusSystemRetargetsToLatestRequest(t *testing.T) {
	w, sched, cam, focus, body := newFocusFixture(t)

	other := w.CreateEntity()
	otherPos := common.Vec3{X: -60, Z: 40}
	if err := ecs.Add(w, other, component.TransformComponent, &component.Transform{Position: otherPos}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, other, component.BodyComponent, &component.Body{Name: "Mars", Radius: 3.2}); err != nil {
		t.Fatal(err)
	}

	w.Events().Push(ecs.Event{Kind: ecs.EventFocusBody, Data: ecs.FocusBodyEvent{Body: body}})
	for i := 0; i < 5; i++ {
		sched.Update(w)
	}
	w.Events().Push(ecs.Event{Kind: ecs.EventFocusBody, Data: ecs.FocusBodyEvent{Body: other}})
	for i := 0; i < 2000 && focus.Controller().State() != camera.Idle; i++ {
		sched.Update(w)
	}

	if cam.Pose().LookAt != otherPos {
		t.Fatalf("camera looks at %+v, want the later target %+v", cam.Pose().LookAt, otherPos)
	}
}
