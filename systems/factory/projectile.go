package factory

import (
	"math"

	"github.com/automoto/dronefall/archetypes"
	"github.com/automoto/dronefall/components"
	"github.com/automoto/dronefall/shared/contract"
	"github.com/automoto/dronefall/shared/gamemath"
	"github.com/automoto/dronefall/tags"
	"github.com/yohamta/donburi"
)

// ShotParams describes a projectile to fire.
type ShotParams struct {
	Owner   components.ProjectileOwner
	OriginX float64
	OriginY float64
	TargetX float64
	TargetY float64
	Speed   float64
	Damage  float64
	Pierce  int
	Radius  float64
}

// SpawnProjectile fires a projectile from the origin toward the target,
// reusing an entity from the owner's pool when possible. Player and hostile
// shots never share entities.
func SpawnProjectile(w donburi.World, s ShotParams) *donburi.Entry {
	session, ok := tags.Session.First(w)
	if !ok {
		return nil
	}
	c := components.Settings.Get(session).Config
	pool := components.Pool.Get(session)
	roster := components.Roster.Get(session)

	free := &pool.PlayerShots
	live := &roster.PlayerShots
	if s.Owner == components.OwnerHostile {
		free = &pool.HostileShots
		live = &roster.HostileShots
	}

	var shot *donburi.Entry
	if n := len(*free); n > 0 {
		shot = w.Entry((*free)[n-1])
		*free = (*free)[:n-1]
		contract.Require(components.Projectile.Get(shot).Pooled, "projectile %v acquired but not pooled", shot.Entity())
	} else {
		shot = archetypes.Projectile.Spawn(w)
	}

	vx, vy := gamemath.Velocity(s.OriginX, s.OriginY, s.TargetX, s.TargetY, s.Speed)

	components.Projectile.SetValue(shot, components.ProjectileData{
		Owner:  s.Owner,
		Damage: s.Damage,
		Pierce: s.Pierce,
		Radius: s.Radius,
		LifeMs: c.Combat.ProjectileTTLMs,
		PrevX:  s.OriginX,
		PrevY:  s.OriginY,
		Alive:  true,
	})
	components.Position.SetValue(shot, components.PositionData{X: s.OriginX, Y: s.OriginY})
	components.Velocity.SetValue(shot, components.VelocityData{SpeedX: vx, SpeedY: vy})
	components.Visual.SetValue(shot, components.VisualData{
		Rotation: math.Atan2(vy, vx),
		Alpha:    1,
		Visible:  true,
	})

	*live = append(*live, shot.Entity())
	return shot
}

// KillProjectile deactivates and hides a projectile. PurgeDead returns it to
// its owner's pool.
func KillProjectile(shot *donburi.Entry) {
	data := components.Projectile.Get(shot)
	data.Alive = false
	components.Visual.Get(shot).Visible = false
}

// ReleaseProjectile returns a dead projectile to its owner's pool.
func ReleaseProjectile(w donburi.World, shot *donburi.Entry) {
	session, ok := tags.Session.First(w)
	if !ok {
		return
	}
	data := components.Projectile.Get(shot)
	contract.Require(!data.Alive, "projectile %v released while alive", shot.Entity())
	contract.Require(!data.Pooled, "projectile %v released twice", shot.Entity())
	if data.Pooled {
		return
	}
	data.Pooled = true

	pool := components.Pool.Get(session)
	if data.Owner == components.OwnerHostile {
		pool.HostileShots = append(pool.HostileShots, shot.Entity())
	} else {
		pool.PlayerShots = append(pool.PlayerShots, shot.Entity())
	}
}
