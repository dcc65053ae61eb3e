package gml

// TestdataSphere is a small example program: two translated unit
// spheres unioned together, lit by a single point light, rendered to
// sphere.ppm. Used by the lexer, parser and evaluator tests.
const TestdataSphere = `
{ /v /u /face 0.8 0.2 v point 1.0 0.2 1.0 } sphere /s
s -1.2 0.0 3.0 translate
s 1.2 1.0 3.0 translate
union /scene
-10.0 10.0 0.0 point
1.0 1.0 1.0 point pointlight /l
0.5 0.5 0.5 point
[l]
scene 4 90.0 1920 1200 "sphere.ppm" render
{ } [ ] /ident true false 123 1.23 "hello"
`

// TestdataCube is a larger example program exercising a checkerboard
// texture closure, a plane, and the full affine transform builtins
// (uscale, rotatex, rotatey, rotatez) before rendering to cube.ppm.
const TestdataCube = `
{ /v /u /face 1.0 0.5 0.5 point 1.0 0.0 1.0 } cube
0.0 -0.5 4.0 translate
2.0 uscale
45.0 rotatex
135.0 rotatey /c
1.0 1.0 1.0 point /white
0.0 0.0 1.0 point /blue
[ [ blue white ] [ white blue ] ] /texture
{ /i i 0.0 lessf { i negf 0.5 addf } { i } if } /fabs
{
  fabs apply /v fabs apply /u /face
  { frac 0.5 addf floor /i i } /toIntCoord
  texture u toIntCoord apply get
  v toIntCoord apply get
  0.3 0.9 1.0
} plane
0.0 -3.0 0.0 translate /p
{ /v /u /face 0.5 0.5 0.5 point 0.3 0.85 1.0 } plane
0.0 0.0 8.0 translate
270.0 rotatex
45.0 rotatez /p2
c p union p2 union /scene
-10 10 0 point
1.0 1.0 1.0 point pointlight /l
0.2 0.2 0.2 point
[l]
scene 7 90.0 480 320 "cube.ppm" render
`
